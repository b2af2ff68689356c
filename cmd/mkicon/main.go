// mkicon draws the placeholder app icon at every manifest size into
// ./icons/icon-{size}x{size}.png. Use it when no master artwork exists.
// Usage: go run ./cmd/mkicon
package main

import (
	"fmt"
	"os"

	"github.com/Mavwarf/pwaicons/internal/config"
	"github.com/Mavwarf/pwaicons/internal/console"
	"github.com/Mavwarf/pwaicons/internal/generator"
)

func main() {
	if err := generator.Placeholder(".", config.Sizes(), console.New(os.Stdout)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
