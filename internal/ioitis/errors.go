package ioitis

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/pkg/errcode"
)

// QueryError is returned when a lookup in the reference store fails.
func QueryError(lookup, name string, err error) error {
	msg := "Lookup of %s for <em>%s</em> failed"
	vars := []any{lookup, name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReferenceQueryError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s query for %q: %w",
			fn.Name(), lookup, name, err),
	}
}
