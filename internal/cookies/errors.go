package cookies

import "errors"

// Common errors.
var (
	ErrParse       = errors.New("malformed cookie string")
	ErrExpiresDate = errors.New("invalid cookie expiry date")
	ErrNotFound    = errors.New("cookie not found")
	ErrStoreClosed = errors.New("cookie store is closed")
)
