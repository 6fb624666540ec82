package resolver

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/pkg/errcode"
	"github.com/gnames/itismatch/pkg/taxon"
)

// QueryError is returned when the reference store fails during
// resolution. It aborts the run.
func QueryError(rec taxon.Record, err error) error {
	msg := "Reference store failed while resolving <em>%s</em> (line %d)"
	vars := []any{rec.DisplayName(), rec.Line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ResolveQueryError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot resolve %q: %w",
			fn.Name(), rec.DisplayName(), err),
	}
}

// CancelledError is returned when the context is done before a record
// is resolved.
func CancelledError(rec taxon.Record, err error) error {
	msg := "Resolution was cancelled at line %d"
	vars := []any{rec.Line}
	return &gn.Error{
		Code: errcode.ResolveCancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("resolution cancelled: %w", err),
	}
}
