package tokencache

import (
	"time"

	"github.com/mobilekit/fblogin/pkg/permissions"
)

// NeverExpires is the sentinel expiration for credentials the provider
// returned without a lifetime.
var NeverExpires = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// Credential is the persisted result of a successful login. It is immutable
// once constructed: a new login produces a new Credential, never an in-place
// mutation, and accessors hand out copies of the permission sets.
type Credential struct {
	tokenString         string
	granted             permissions.Set
	declined            permissions.Set
	appID               string
	userID              string
	expiresAt           time.Time
	refreshedAt         time.Time
	dataAccessExpiresAt time.Time
}

// NewCredential constructs an immutable credential. Zero expiration times
// are normalized to NeverExpires; the permission sets are copied.
func NewCredential(tokenString, appID, userID string, granted, declined permissions.Set, expiresAt, refreshedAt, dataAccessExpiresAt time.Time) *Credential {
	if expiresAt.IsZero() {
		expiresAt = NeverExpires
	}
	if dataAccessExpiresAt.IsZero() {
		dataAccessExpiresAt = NeverExpires
	}
	return &Credential{
		tokenString:         tokenString,
		granted:             granted.Clone(),
		declined:            declined.Clone(),
		appID:               appID,
		userID:              userID,
		expiresAt:           expiresAt,
		refreshedAt:         refreshedAt,
		dataAccessExpiresAt: dataAccessExpiresAt,
	}
}

// TokenString returns the opaque access token.
func (c *Credential) TokenString() string { return c.tokenString }

// AppID returns the owning application identifier.
func (c *Credential) AppID() string { return c.appID }

// UserID returns the subject identifier, possibly empty.
func (c *Credential) UserID() string { return c.userID }

// Permissions returns a copy of the granted permission set.
func (c *Credential) Permissions() permissions.Set { return c.granted.Clone() }

// DeclinedPermissions returns a copy of the declined permission set.
func (c *Credential) DeclinedPermissions() permissions.Set { return c.declined.Clone() }

// ExpiresAt returns the absolute expiration timestamp.
func (c *Credential) ExpiresAt() time.Time { return c.expiresAt }

// RefreshedAt returns when the credential was last produced or refreshed.
func (c *Credential) RefreshedAt() time.Time { return c.refreshedAt }

// DataAccessExpiresAt returns when data access lapses for the credential.
func (c *Credential) DataAccessExpiresAt() time.Time { return c.dataAccessExpiresAt }

// HasPermission reports whether p was granted.
func (c *Credential) HasPermission(p permissions.Permission) bool {
	return c.granted.Contains(p)
}

// IsExpired reports whether the credential's lifetime has lapsed.
func (c *Credential) IsExpired() bool {
	return c.expiresAt.Before(time.Now())
}

// IsDataAccessExpired reports whether data access has lapsed.
func (c *Credential) IsDataAccessExpired() bool {
	return c.dataAccessExpiresAt.Before(time.Now())
}
