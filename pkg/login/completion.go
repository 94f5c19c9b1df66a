package login

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/mobilekit/fblogin/pkg/permissions"
	"github.com/mobilekit/fblogin/pkg/signedrequest"
	"github.com/mobilekit/fblogin/pkg/tokencache"
)

// completionParameters is the parsed-once view of a redirect's payload.
// Parsing yields exactly one of a populated parameter set or an error,
// never both.
type completionParameters struct {
	tokenString         string
	granted             permissions.Set
	declined            permissions.Set
	userID              string
	expiresAt           time.Time
	dataAccessExpiresAt time.Time
	challenge           string
}

// parseCompletion interprets the merged redirect parameters. A missing
// access token with provider error fields present means a failure; a
// missing token without them still parses, signalling a user cancellation
// to the caller.
func parseCompletion(params map[string]string, now time.Time) (*completionParameters, error) {
	token := params["access_token"]
	if token == "" {
		for _, key := range []string{"error_message", "error", "error_code", "error_reason"} {
			if _, failed := params[key]; failed {
				return nil, providerErrorFromParams(params)
			}
		}
	}

	userID := params["user_id"]
	if userID == "" {
		userID = signedrequest.UserID(params["signed_request"])
	}

	return &completionParameters{
		tokenString:         token,
		granted:             permissions.Parse(params["granted_scopes"]),
		declined:            permissions.Parse(params["denied_scopes"]),
		userID:              userID,
		expiresAt:           parseExpiry(params, now),
		dataAccessExpiresAt: parseDataAccessExpiry(params),
		challenge:           challengeFromState(params["state"]),
	}, nil
}

// parseExpiry prefers an absolute expiration timestamp over a relative
// lifetime; tokens advertising neither are treated as never expiring.
func parseExpiry(params map[string]string, now time.Time) time.Time {
	for _, key := range []string{"expires", "expires_at"} {
		if raw, ok := params[key]; ok {
			if seconds, err := strconv.ParseFloat(raw, 64); err == nil && seconds > 0 {
				return time.Unix(int64(seconds), 0)
			}
		}
	}
	if raw, ok := params["expires_in"]; ok {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			return now.Add(time.Duration(seconds) * time.Second)
		}
	}
	return tokencache.NeverExpires
}

func parseDataAccessExpiry(params map[string]string) time.Time {
	if raw, ok := params["data_access_expiration_time"]; ok {
		if seconds, err := strconv.ParseFloat(raw, 64); err == nil && seconds > 0 {
			return time.Unix(int64(seconds), 0)
		}
	}
	return tokencache.NeverExpires
}

// challengeFromState pulls the echoed challenge out of the state JSON
// blob. Any malformation yields "", which later fails the challenge
// comparison rather than erroring here.
func challengeFromState(raw string) string {
	if raw == "" {
		return ""
	}
	var state struct {
		Challenge string `json:"challenge"`
	}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return ""
	}
	return state.Challenge
}
