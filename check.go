//go:build !contiguous_unchecked

package contiguous

import "fmt"

// checksEnabled reports whether contract checks are compiled in. Build
// with -tags contiguous_unchecked to elide them; precondition breaches
// are then undefined behavior.
const checksEnabled = true

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
