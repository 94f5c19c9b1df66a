package signedrequest

import "errors"

var (
	ErrMalformed        = errors.New("malformed signed request")
	ErrSignatureInvalid = errors.New("signature mismatch")
)
