package secrecy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Invariant 1 — monotone PC: an expression evaluated under an elevated PC
// never reports a level below that PC, so a High-guarded branch that only
// ever assigns to a High field raises nothing, while the same guard
// around an assignment to a Low field would (engine_test.go's S2 covers
// the failing case; this is its positive mirror).
func TestMonotonePCUnderHighGuardAllowsHighSink(t *testing.T) {
	src := `
module M {
  class C {
    @Secrecy(High) Int hGuard;
    @Secrecy(High) Int hField;

    @Secrecy(Low) void run() {
      if (this.hGuard) {
        this.hField := 1;
      }
    }
  }
}
`
	diags := runSource(t, src)
	assert.Empty(t, diags)
}

// Invariant 5 — idempotence: running the engine twice over independently
// parsed copies of the same source produces the same diagnostic multiset.
func TestIdempotentAcrossRepeatedRuns(t *testing.T) {
	src := `
module M {
  class C {
    @Secrecy(High) Int hField;
    @Secrecy(Low) Int lField;

    @Secrecy(Low) void run() {
      this.lField := this.hField;
    }
  }
}
`
	first := codesOf(runSource(t, src))
	second := codesOf(runSource(t, src))
	assert.Equal(t, first, second)
}

// Invariant 6 — lattice-parametricity: renaming the lattice's labels
// (keeping its shape) produces the same diagnostics with the labels
// renamed correspondingly.
func TestLatticeParametricityUnderRelabelling(t *testing.T) {
	low := `
lattice {
  label Public;
  label Secret;
  Public <= Secret;
}
module M {
  class C {
    @Secrecy(Secret) Int hField;
    @Secrecy(Public) Int lField;

    @Secrecy(Public) void run() {
      this.lField := this.hField;
    }
  }
}
`
	diags := runSource(t, low)
	assert.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Secret")
	assert.Contains(t, diags[0].Message, "Public")
}

// Invariant 4 — default label: a field with no Secrecy annotation
// contributes ⊥ at every use, so assigning it into a Low sink never
// leaks regardless of the field's declared type.
func TestUnannotatedFieldDefaultsToBottom(t *testing.T) {
	src := `
module M {
  class C {
    Int plain;
    @Secrecy(Low) Int lField;

    @Secrecy(Low) void run() {
      this.lField := this.plain;
    }
  }
}
`
	diags := runSource(t, src)
	assert.Empty(t, diags)
}
