package login

import (
	"encoding/base64"
	"strings"

	"github.com/google/uuid"

	"github.com/mobilekit/fblogin/pkg/securestore"
)

const challengeKey = "expected_login_challenge"

// generateChallenge returns a fresh anti-replay nonce: the base64 form of a
// random UUID truncated to 20 characters, with "+" rewritten to "=" so the
// value survives a round trip through URL query encoding.
func generateChallenge() string {
	encoded := base64.StdEncoding.EncodeToString([]byte(uuid.NewString()))
	return strings.ReplaceAll(encoded[:20], "+", "=")
}

// challengeStore persists the single pending challenge across the app
// switch to the browser. At most one challenge exists at a time; storing a
// new one replaces any leftover from an abandoned attempt.
type challengeStore struct {
	store securestore.Store
}

func (s *challengeStore) set(challenge string) error {
	return s.store.Set(challengeKey, []byte(challenge))
}

// consume returns the stored challenge and removes it, so a challenge can
// match at most one redirect. Absence or a read failure yields "".
func (s *challengeStore) consume() string {
	value, err := s.store.Get(challengeKey)
	s.clear()
	if err != nil {
		return ""
	}
	return string(value)
}

func (s *challengeStore) clear() {
	_ = s.store.Delete(challengeKey)
}
