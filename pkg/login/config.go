package login

import "github.com/mobilekit/fblogin/pkg/fburl"

// Version is reported to the provider through the sdk_version parameter.
const Version = "0.1.0"

// Audience selects the default visibility of content published through a
// granted session. It is forwarded verbatim as default_audience.
type Audience string

const (
	AudienceOnlyMe   Audience = "only_me"
	AudienceFriends  Audience = "friends"
	AudienceEveryone Audience = "everyone"
)

// Config carries the application-level settings every login attempt needs.
// It is loadable from the environment via pkg/config.
type Config struct {
	// AppID identifies the application with the provider. Login panics
	// when it is empty; there is no meaningful degraded mode.
	AppID string `env:"FACEBOOK_APP_ID,required"`

	// GraphVersion selects the provider API version in the dialog path.
	GraphVersion string `env:"FACEBOOK_GRAPH_API_VERSION" envDefault:"v3.2"`

	// HostPrefix picks the provider host variant, "m." for the
	// touch-optimized dialog.
	HostPrefix string `env:"FACEBOOK_HOST_PREFIX" envDefault:"m."`

	// DefaultAudience is forwarded on every authorization request.
	DefaultAudience Audience `env:"FACEBOOK_DEFAULT_AUDIENCE" envDefault:"friends"`
}

// RedirectScheme returns the custom URL scheme this application must have
// registered for the provider to redirect back into it.
func (c Config) RedirectScheme() string {
	return fburl.RedirectScheme(c.AppID)
}
