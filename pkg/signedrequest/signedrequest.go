package signedrequest

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Payload is the JSON object carried in the second segment.
type Payload struct {
	UserID    string `json:"user_id,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`
	IssuedAt  int64  `json:"issued_at,omitempty"`
}

// Parse decodes the payload segment without verifying the signature.
// Returns ErrMalformed when the value does not have exactly two segments or
// the payload is not base64-encoded JSON.
func Parse(signedRequest string) (Payload, error) {
	var payload Payload
	_, data, err := segments(signedRequest)
	if err != nil {
		return payload, err
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, ErrMalformed
	}
	return payload, nil
}

// UserID extracts the subject id, tolerating every malformation by
// returning an empty string. A redirect without a recoverable user id is
// still a valid login.
func UserID(signedRequest string) string {
	payload, err := Parse(signedRequest)
	if err != nil {
		return ""
	}
	return payload.UserID
}

// Verify recomputes the HMAC-SHA256 signature over the encoded payload
// segment and compares it in constant time.
func Verify(signedRequest, secret string) error {
	dot := strings.Index(signedRequest, ".")
	if dot < 0 {
		return ErrMalformed
	}
	sig, _, err := segments(signedRequest)
	if err != nil {
		return err
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(signedRequest[dot+1:]))
	if subtle.ConstantTimeCompare(sig, h.Sum(nil)) != 1 {
		return ErrSignatureInvalid
	}
	return nil
}

// Sign produces a signed request for the given payload. Tests and
// server-side tooling use it to fabricate values that Parse and Verify
// accept.
func Sign(payload Payload, secret string) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	payloadEnc := base64.RawURLEncoding.EncodeToString(data)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payloadEnc))
	sigEnc := base64.RawURLEncoding.EncodeToString(h.Sum(nil))

	return sigEnc + "." + payloadEnc, nil
}

// segments splits into the decoded signature and payload bytes.
func segments(signedRequest string) (sig, payload []byte, err error) {
	parts := strings.Split(signedRequest, ".")
	if len(parts) != 2 {
		return nil, nil, ErrMalformed
	}
	if sig, err = decodeSegment(parts[0]); err != nil {
		return nil, nil, ErrMalformed
	}
	if payload, err = decodeSegment(parts[1]); err != nil {
		return nil, nil, ErrMalformed
	}
	return sig, payload, nil
}

// decodeSegment accepts both url-safe and standard alphabets; the provider
// has emitted both historically.
func decodeSegment(seg string) ([]byte, error) {
	seg = strings.TrimRight(seg, "=")
	if data, err := base64.RawURLEncoding.DecodeString(seg); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(seg)
}
