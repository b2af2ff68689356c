// resizeicon resamples ./icons/eta-icon-master.png to every manifest size.
// Sizes that cannot be produced are reported and skipped; the exit status
// stays zero.
// Usage: go run ./cmd/resizeicon
package main

import (
	"os"

	"github.com/Mavwarf/pwaicons/internal/config"
	"github.com/Mavwarf/pwaicons/internal/console"
	"github.com/Mavwarf/pwaicons/internal/generator"
)

func main() {
	generator.Resize(".", config.Sizes(), console.New(os.Stdout))
}
