package dimacs

import (
	"os"
	"testing"

	"github.com/ailrk/theorem-prover/sat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDPOnSATLIBStyleFixtures covers spec.md §8 property 10: DP must
// return true on known-sat fixtures and false on known-unsat fixtures,
// named in the SATLIB uf/uuf convention.
func TestDPOnSATLIBStyleFixtures(t *testing.T) {
	cases := []struct {
		file string
		want bool
	}{
		{"../../testdata/dimacs/uf-tiny.cnf", true},
		{"../../testdata/dimacs/uuf-tiny.cnf", false},
		{"../../testdata/dimacs/uuf-contradiction.cnf", false},
	}
	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			f, err := os.Open(c.file)
			require.NoError(t, err)
			defer f.Close()

			cs, err := Read(f)
			require.NoError(t, err)
			assert.Equal(t, c.want, sat.IsSatisfiable(cs))
		})
	}
}
