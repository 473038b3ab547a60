// Package fresh implements the fresh-name policy shared by substitution,
// alpha-renaming, and Skolemisation: given a base name and a taken set,
// pick the first monotonically-numbered name not in the taken set.
package fresh

import (
	"fmt"

	"github.com/ailrk/theorem-prover/term"
)

// Name returns the first name of the form base0, base1, base2, ... that
// is not a member of taken.
func Name(base string, taken term.Set) string {
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		if !taken.Contains(candidate) {
			return candidate
		}
	}
}
