package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingURL         = errors.New("novel URL is missing")
	ErrInvalidURL         = errors.New("not a J-Novel Club novel URL")
	ErrPartialCredentials = errors.New("partial credentials: email and password must come together")
)
