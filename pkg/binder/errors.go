package binder

import "errors"

var (
	ErrInvalidTarget       = errors.New("binder.invalid_target")
	ErrFailedToParseQuery  = errors.New("binder.invalid_query")
	ErrFailedToParseForm   = errors.New("binder.invalid_form")
	ErrFailedToParseCookie = errors.New("binder.invalid_cookie")
	ErrFailedToParseHeader = errors.New("binder.invalid_header")
)
