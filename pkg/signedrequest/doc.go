// Package signedrequest parses the provider's signed_request values:
// compact two-segment strings of the form
//
//	base64url(signature).base64url(json payload)
//
// where the signature is an HMAC-SHA256 over the encoded payload segment,
// keyed with the application secret.
//
// A login redirect may omit user_id and carry it only inside signed_request;
// UserID extracts it leniently, returning an empty string for any
// malformation instead of an error, because a missing subject id is not
// fatal to a login. Verify is the strict counterpart for callers that hold
// the application secret, and Sign exists so tests and server-side tooling
// can fabricate well-formed values.
package signedrequest
