package secrecy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"secrecy/internal/errors"
	"secrecy/internal/parser"
)

// runSource parses src and runs the engine over it, failing the test if
// the source doesn't parse cleanly.
func runSource(t *testing.T, src string) []errors.CompilerError {
	t.Helper()
	model, parseErrs, scanErrs := parser.ParseSource("test.abs", src)
	assert.Empty(t, parseErrs)
	assert.Empty(t, scanErrs)
	return Run(model)
}

func codesOf(diags []errors.CompilerError) []string {
	codes := make([]string, len(diags))
	for i, d := range diags {
		codes[i] = d.Code
	}
	return codes
}

// S1 — if-efficiency (pass): a Low guard with branches assigning only to
// Low fields raises nothing.
func TestIfWithLowGuardAndLowAssignmentsPasses(t *testing.T) {
	src := `
module M {
  class C {
    @Secrecy(Low) Int lField;

    @Secrecy(Low) Int run(@Secrecy(Low) Int guard) {
      if (guard) {
        this.lField := 1;
      } else {
        this.lField := 2;
      }
      return 0;
    }
  }
}
`
	diags := runSource(t, src)
	assert.Empty(t, diags)
}

// S2 — if-block leakage (fail): a High guard raises the PC for both
// branches, so each assignment to a Low field leaks.
func TestIfWithHighGuardLeaksIntoLowAssignments(t *testing.T) {
	src := `
module M {
  class C {
    @Secrecy(High) Int hField;
    @Secrecy(Low) Int lField;

    @Secrecy(Low) Int run() {
      if (this.hField) {
        this.lField := 1;
      } else {
        this.lField := 2;
      }
      return 0;
    }
  }
}
`
	diags := runSource(t, src)
	codes := codesOf(diags)
	assert.Len(t, codes, 2)
	assert.Equal(t, []string{errors.ErrorLeakageFromTo, errors.ErrorLeakageFromTo}, codes)
}

// S3 — parameter-too-high: a High argument supplied to a Low parameter at
// an async call site.
func TestAsyncCallWithHighArgumentIntoLowParameterFails(t *testing.T) {
	src := `
module M {
  interface I {
    @Secrecy(Low) void m(@Secrecy(Low) Int p);
  }
  class Callee implements I {
    @Secrecy(Low) void m(@Secrecy(Low) Int p) {
      return;
    }
  }
  class Caller {
    Callee o;
    @Secrecy(High) Int hVar;

    @Secrecy(Low) void run() {
      this.o!m(this.hVar);
    }
  }
}
`
	diags := runSource(t, src)
	assert.Equal(t, []string{errors.ErrorParameterTooHigh}, codesOf(diags))
}

// S4 — override at-most: a class raising an interface method's return
// secrecy above the interface's declared bound.
func TestOverrideRaisingReturnSecrecyFails(t *testing.T) {
	src := `
module M {
  interface I {
    @Secrecy(Low) Int foo();
  }
  class C implements I {
    @Secrecy(High) Int foo() {
      return 0;
    }
  }
}
`
	diags := runSource(t, src)
	assert.Equal(t, []string{errors.ErrorLeakageAtMost}, codesOf(diags))
}

// S5 — await/get PC release: an assignment made while a High future's
// await frame is still open leaks, but the same assignment after the
// matching "get" releases the frame does not.
func TestGetReleasesAwaitedFuturesPCFrame(t *testing.T) {
	src := `
module M {
  interface I {
    @Secrecy(High) Int m();
  }
  class Callee implements I {
    @Secrecy(High) Int m() {
      return 0;
    }
  }
  class Caller {
    Callee o;
    @Secrecy(Low) Int lField;

    @Secrecy(Low) void run() {
      @Secrecy(High) Int f = this.o!m();
      await f?;
      this.lField := 1;
      x := get f;
      this.lField := 2;
    }
  }
}
`
	diags := runSource(t, src)
	assert.Equal(t, []string{errors.ErrorLeakageFromTo}, codesOf(diags))
}

// S6 — wrong annotation value: an annotation naming a label outside the
// default lattice reports once and contributes no further propagation.
func TestAnnotationWithUndeclaredLabelReportsOnce(t *testing.T) {
	src := `
module M {
  class C {
    @Secrecy(Medium) Int mField;

    @Secrecy(Low) Int run() {
      return 0;
    }
  }
}
`
	diags := runSource(t, src)
	assert.Equal(t, []string{errors.ErrorWrongAnnotationValue}, codesOf(diags))
}

// A Model with no lattice declaration still runs against the default
// lattice rather than disabling the engine (spec.md §6 "Inputs" default,
// resolved against the "Activation" clause in DESIGN.md).
func TestNoDeclaredLatticeUsesDefault(t *testing.T) {
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
	diags := runSource(t, src)
	assert.Equal(t, []string{errors.ErrorLeakageFromTo}, codesOf(diags))
}

// A malformed user-declared lattice is a configuration error: the pass is
// suppressed entirely, with no diagnostics emitted (spec.md §7).
func TestMalformedLatticeSuppressesThePass(t *testing.T) {
	src := `
lattice {
  label A;
  label B;
  label X;
  label Y;
  A <= B;
  X <= Y;
}
module M {
  class C {
    @Secrecy(A) Int field;

    @Secrecy(Medium) Int run() {
      return 0;
    }
  }
}
`
	diags := runSource(t, src)
	assert.Empty(t, diags)
}
