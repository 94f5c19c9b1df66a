package tokencache

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mobilekit/fblogin/pkg/logger"
	"github.com/mobilekit/fblogin/pkg/permissions"
	"github.com/mobilekit/fblogin/pkg/securestore"
)

const (
	// credentialKey is the secure-storage key of the persisted record; the
	// store handed to NewCache is expected to be namespaced already.
	credentialKey = "credential"

	// markerKey is the preferences key of the installation marker.
	markerKey = "fblogin.credential.uuid"
)

// record is the persisted shape: the credential paired with the
// installation marker current at write time.
type record struct {
	Marker     string         `json:"uuid"`
	Credential credentialJSON `json:"credential"`
}

type credentialJSON struct {
	TokenString         string    `json:"token_string"`
	Permissions         []string  `json:"permissions"`
	DeclinedPermissions []string  `json:"declined_permissions"`
	AppID               string    `json:"app_id"`
	UserID              string    `json:"user_id"`
	ExpiresAt           time.Time `json:"expires_at"`
	RefreshedAt         time.Time `json:"refreshed_at"`
	DataAccessExpiresAt time.Time `json:"data_access_expires_at"`
}

// Option configures a Cache during construction.
type Option func(*Cache)

// WithLogger configures the logger for the cache.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// Cache wraps secure storage with the installation-marker guard.
type Cache struct {
	store securestore.Store
	prefs Preferences
	log   *slog.Logger
}

// NewCache builds a cache over the given secure store and preferences.
// The store should be namespaced exclusively to the token cache.
func NewCache(store securestore.Store, prefs Preferences, opts ...Option) *Cache {
	c := &Cache{
		store: store,
		prefs: prefs,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the cached credential, or nil when there is none. A record
// paired with a marker that differs from the currently stored marker
// (including an absent marker) belongs to a previous installation; it is
// cleared as a side effect and nil is returned. Storage read failures are
// cache misses, never errors.
func (c *Cache) Load() *Credential {
	data, err := c.store.Get(credentialKey)
	if err != nil {
		return nil
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		c.log.Warn("discarding undecodable credential record", logger.Component("tokencache"), logger.Error(err))
		c.Clear()
		return nil
	}

	marker, ok := c.prefs.Get(markerKey)
	if !ok || rec.Marker != marker {
		// Secure storage survived a reinstall that preferences did not.
		c.Clear()
		return nil
	}

	cred := rec.Credential
	return NewCredential(
		cred.TokenString,
		cred.AppID,
		cred.UserID,
		toSet(cred.Permissions),
		toSet(cred.DeclinedPermissions),
		cred.ExpiresAt,
		cred.RefreshedAt,
		cred.DataAccessExpiresAt,
	)
}

// Store persists the credential, creating the installation marker on first
// use. A nil credential clears the cache. Write failures are swallowed: the
// credential simply fails to persist.
func (c *Cache) Store(cred *Credential) {
	if cred == nil {
		c.Clear()
		return
	}

	marker, ok := c.prefs.Get(markerKey)
	if !ok {
		marker = uuid.NewString()
		c.prefs.Set(markerKey, marker)
	}

	data, err := json.Marshal(record{
		Marker: marker,
		Credential: credentialJSON{
			TokenString:         cred.TokenString(),
			Permissions:         toStrings(cred.Permissions()),
			DeclinedPermissions: toStrings(cred.DeclinedPermissions()),
			AppID:               cred.AppID(),
			UserID:              cred.UserID(),
			ExpiresAt:           cred.ExpiresAt(),
			RefreshedAt:         cred.RefreshedAt(),
			DataAccessExpiresAt: cred.DataAccessExpiresAt(),
		},
	})
	if err != nil {
		c.log.Warn("failed to encode credential record", logger.Component("tokencache"), logger.Error(err))
		return
	}
	if err := c.store.Set(credentialKey, data); err != nil {
		c.log.Warn("failed to persist credential", logger.Component("tokencache"), logger.Error(err))
	}
}

// Clear removes the stored record and the installation marker.
func (c *Cache) Clear() {
	if err := c.store.Delete(credentialKey); err != nil {
		c.log.Warn("failed to clear credential record", logger.Component("tokencache"), logger.Error(err))
	}
	c.prefs.Remove(markerKey)
}

func toStrings(s permissions.Set) []string {
	perms := s.Slice()
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

func toSet(names []string) permissions.Set {
	s := permissions.Set{}
	for _, name := range names {
		s[permissions.Permission(name)] = struct{}{}
	}
	return s
}
