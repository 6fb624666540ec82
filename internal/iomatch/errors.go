package iomatch

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/itismatch/pkg/errcode"
)

// CancelledError is returned when matching is interrupted.
func CancelledError(err error) error {
	return &gn.Error{
		Code: errcode.ResolveCancelledError,
		Msg:  "Matching was cancelled",
		Err:  fmt.Errorf("matching cancelled: %w", err),
	}
}

// PayloadError is returned when a payload lookup fails.
func PayloadError(line int, err error) error {
	msg := "Cannot decode payload at line %d"
	vars := []any{line}
	return &gn.Error{
		Code: errcode.ResolveQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("payload at line %d: %w", line, err),
	}
}
