package fburl

import (
	"net/url"
	"strings"
)

const (
	// DefaultGraphVersion is the dialog endpoint version used when the
	// caller passes an empty version to BuildAuthorizationURL.
	DefaultGraphVersion = "v3.2"

	// OAuthPath is the fixed path segment of the provider's OAuth dialog.
	OAuthPath = "/dialog/oauth"

	// RedirectSchemePrefix combines with the application id to form the
	// inbound custom scheme ("fb" + appID).
	RedirectSchemePrefix = "fb"

	// RedirectHost is the host component of the inbound redirect URI.
	RedirectHost = "authorize"

	// ProviderAppScheme is the custom scheme of the native provider app.
	// Querying whether it can be opened decides the fbapp_pres parameter.
	ProviderAppScheme = "fbauth2"

	providerDomain = "facebook.com"
)

// Source-application bundle prefixes allowed to deliver our redirect.
var trustedSourcePrefixes = []string{"com.facebook", "com.apple", "com.burbn"}

// RedirectScheme returns the custom scheme registered for inbound redirects,
// "fb" followed by the application id.
func RedirectScheme(appID string) string {
	return RedirectSchemePrefix + appID
}

// RedirectURI returns the full inbound redirect base, "fb{appID}://authorize".
func RedirectURI(appID string) string {
	u := url.URL{Scheme: RedirectScheme(appID), Host: RedirectHost}
	return u.String()
}

// BuildAuthorizationURL assembles an https URL on the provider domain.
// hostPrefix selects the host variant ("m.", "www."); a missing trailing dot
// is added. An empty version falls back to DefaultGraphVersion. All parameter
// values are percent-encoded and the query is emitted in sorted key order.
func BuildAuthorizationURL(hostPrefix, version, path string, params map[string]string) (*url.URL, error) {
	if hostPrefix != "" && !strings.HasSuffix(hostPrefix, ".") {
		hostPrefix += "."
	}
	if version == "" {
		version = DefaultGraphVersion
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}

	u := &url.URL{
		Scheme:   "https",
		Host:     hostPrefix + providerDomain,
		Path:     "/" + version + path,
		RawQuery: query.Encode(),
	}
	return u, nil
}

// IsAuthorizationURL reports whether u points at the provider's OAuth dialog.
func IsAuthorizationURL(u *url.URL) bool {
	return u != nil && strings.HasSuffix(u.Path, OAuthPath)
}

// IsRedirect reports whether u is the application's inbound redirect target.
func IsRedirect(u *url.URL, appID string) bool {
	return u != nil && strings.HasPrefix(u.String(), RedirectURI(appID))
}

// CanOpen reports whether u is intended as a login callback for this
// application and arrived from a trusted source application. It has no side
// effects and is safe to call speculatively on any incoming URL.
func CanOpen(u *url.URL, appID, sourceApplication string) bool {
	if u == nil {
		return false
	}
	isOurs := strings.HasPrefix(u.Scheme, RedirectScheme(appID)) && u.Host == RedirectHost

	trusted := false
	for _, prefix := range trustedSourcePrefixes {
		if strings.HasPrefix(sourceApplication, prefix) {
			trusted = true
			break
		}
	}
	return isOurs && trusted
}

// ExtractParameters flattens the redirect's query and fragment components
// into a single string map. Query keys win ties against fragment keys of the
// same name. Returns an empty map when u is not our redirect.
func ExtractParameters(u *url.URL, appID string) map[string]string {
	params := map[string]string{}
	if !IsRedirect(u, appID) {
		return params
	}

	for k, v := range parseQueryString(u.RawQuery) {
		params[k] = v
	}
	for k, v := range parseQueryString(u.EscapedFragment()) {
		if _, ok := params[k]; !ok {
			params[k] = v
		}
	}
	return params
}

// Decode url-decodes s with a "+"→space pre-pass. Both the stored and the
// echoed login challenge go through this one function so the comparison is
// symmetric. Malformed percent escapes yield an empty string.
func Decode(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	out, err := url.PathUnescape(s)
	if err != nil {
		return ""
	}
	return out
}

// parseQueryString splits a raw query-shaped string into decoded key/value
// pairs. Components without exactly one "=" or with undecodable halves are
// skipped rather than reported.
func parseQueryString(raw string) map[string]string {
	dict := map[string]string{}
	for _, component := range strings.Split(raw, "&") {
		key, value, ok := strings.Cut(component, "=")
		if !ok {
			continue
		}
		decodedKey := Decode(key)
		if decodedKey == "" {
			continue
		}
		dict[decodedKey] = Decode(value)
	}
	return dict
}
