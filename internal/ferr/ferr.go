// Package ferr defines the error kinds raised at the boundaries of the
// core pipeline (see spec.md §7): structural violations are the only
// error the core itself ever raises, and they are always fatal — a
// transformation that receives input violating its stage's invariants
// has been called out of contract, and the fix belongs in the caller or
// an earlier stage.
package ferr

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// StructuralViolation reports that a value did not satisfy the
// invariants its stage requires. It is never recovered within the core.
type StructuralViolation struct {
	Stage string
	cause error
}

func (e *StructuralViolation) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("structural violation at stage %s", e.Stage)
	}
	return fmt.Sprintf("structural violation at stage %s: %s", e.Stage, e.cause)
}

func (e *StructuralViolation) Unwrap() error { return e.cause }

// Structural builds a StructuralViolation for the given stage, wrapping
// msg with a stack trace via pkg/errors so the violation can be traced
// back to the call site that produced the offending value.
func Structural(stage, msg string) error {
	return &StructuralViolation{Stage: stage, cause: errors.New(msg)}
}

// Structuralf is Structural with fmt.Sprintf-style formatting.
func Structuralf(stage, format string, args ...any) error {
	return &StructuralViolation{Stage: stage, cause: errors.Errorf(format, args...)}
}

// Collector accumulates zero or more errors discovered during a single
// pass (e.g. scanning every clause and literal during clause extraction)
// and reports them together as one multierror instead of
// aborting on the first violation found.
type Collector struct {
	errs *multierror.Error
}

// Add appends err to the collector if it is non-nil.
func (c *Collector) Add(err error) {
	if err == nil {
		return
	}
	c.errs = multierror.Append(c.errs, err)
}

// ErrorOrNil returns nil if nothing was collected, else the aggregated
// multierror.
func (c *Collector) ErrorOrNil() error {
	if c.errs == nil {
		return nil
	}
	return c.errs.ErrorOrNil()
}
