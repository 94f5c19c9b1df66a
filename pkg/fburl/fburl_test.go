package fburl_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilekit/fblogin/pkg/fburl"
)

func TestBuildAuthorizationURL(t *testing.T) {
	t.Parallel()

	t.Run("assembles provider dialog URL", func(t *testing.T) {
		t.Parallel()

		u, err := fburl.BuildAuthorizationURL("m.", "", fburl.OAuthPath, map[string]string{
			"client_id":     "1234",
			"response_type": "token,signed_request",
			"redirect_uri":  "fb1234://authorize",
		})
		require.NoError(t, err)

		assert.Equal(t, "https", u.Scheme)
		assert.Equal(t, "m.facebook.com", u.Host)
		assert.Equal(t, "/"+fburl.DefaultGraphVersion+"/dialog/oauth", u.Path)

		query := u.Query()
		assert.Equal(t, "1234", query.Get("client_id"))
		assert.Equal(t, "token,signed_request", query.Get("response_type"))
		assert.Equal(t, "fb1234://authorize", query.Get("redirect_uri"))
	})

	t.Run("adds missing dot to host prefix", func(t *testing.T) {
		t.Parallel()

		u, err := fburl.BuildAuthorizationURL("www", "", "/dialog/oauth", nil)
		require.NoError(t, err)
		assert.Equal(t, "www.facebook.com", u.Host)
	})

	t.Run("empty prefix targets bare domain", func(t *testing.T) {
		t.Parallel()

		u, err := fburl.BuildAuthorizationURL("", "v5.0", "dialog/oauth", nil)
		require.NoError(t, err)
		assert.Equal(t, "facebook.com", u.Host)
		assert.Equal(t, "/v5.0/dialog/oauth", u.Path)
	})

	t.Run("percent-encodes parameter values", func(t *testing.T) {
		t.Parallel()

		u, err := fburl.BuildAuthorizationURL("m.", "", "/dialog/oauth", map[string]string{
			"state": `{"challenge":"a b+c"}`,
		})
		require.NoError(t, err)

		assert.NotContains(t, u.RawQuery, `{"`)
		assert.Equal(t, `{"challenge":"a b+c"}`, u.Query().Get("state"))
	})

	t.Run("deterministic for any map order", func(t *testing.T) {
		t.Parallel()

		params := map[string]string{"b": "2", "a": "1", "c": "3", "d": "4", "e": "5"}
		first, err := fburl.BuildAuthorizationURL("m.", "", "/dialog/oauth", params)
		require.NoError(t, err)

		for range 10 {
			u, err := fburl.BuildAuthorizationURL("m.", "", "/dialog/oauth", params)
			require.NoError(t, err)
			assert.Equal(t, first.String(), u.String())
		}
	})
}

func TestIsAuthorizationURL(t *testing.T) {
	t.Parallel()

	yes, err := url.Parse("https://m.facebook.com/v3.2/dialog/oauth?client_id=1")
	require.NoError(t, err)
	assert.True(t, fburl.IsAuthorizationURL(yes))

	no, err := url.Parse("https://m.facebook.com/v3.2/dialog/share")
	require.NoError(t, err)
	assert.False(t, fburl.IsAuthorizationURL(no))

	assert.False(t, fburl.IsAuthorizationURL(nil))
}

func TestIsRedirect(t *testing.T) {
	t.Parallel()

	ours, err := url.Parse("fb1234://authorize?access_token=tok")
	require.NoError(t, err)
	assert.True(t, fburl.IsRedirect(ours, "1234"))

	otherApp, err := url.Parse("fb9999://authorize?access_token=tok")
	require.NoError(t, err)
	assert.False(t, fburl.IsRedirect(otherApp, "1234"))

	web, err := url.Parse("https://example.com/authorize")
	require.NoError(t, err)
	assert.False(t, fburl.IsRedirect(web, "1234"))
}

func TestCanOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rawURL string
		source string
		want   bool
	}{
		{"trusted provider source", "fb1234://authorize?code=x", "com.facebook.Facebook", true},
		{"trusted os source", "fb1234://authorize", "com.apple.SafariViewService", true},
		{"trusted companion source", "fb1234://authorize", "com.burbn.instagram", true},
		{"untrusted source", "fb1234://authorize", "com.evil.app", false},
		{"empty source", "fb1234://authorize", "", false},
		{"wrong scheme", "https://authorize", "com.apple.mobilesafari", false},
		{"wrong host", "fb1234://success", "com.apple.mobilesafari", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := url.Parse(tt.rawURL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fburl.CanOpen(u, "1234", tt.source))
		})
	}
}

func TestExtractParameters(t *testing.T) {
	t.Parallel()

	t.Run("merges query and fragment", func(t *testing.T) {
		t.Parallel()

		u, err := url.Parse("fb1234://authorize?granted_scopes=email#access_token=tok&expires_in=5184000")
		require.NoError(t, err)

		params := fburl.ExtractParameters(u, "1234")
		assert.Equal(t, "email", params["granted_scopes"])
		assert.Equal(t, "tok", params["access_token"])
		assert.Equal(t, "5184000", params["expires_in"])
	})

	t.Run("query wins key ties against fragment", func(t *testing.T) {
		t.Parallel()

		u, err := url.Parse("fb1234://authorize?access_token=fromquery#access_token=fromfragment")
		require.NoError(t, err)

		params := fburl.ExtractParameters(u, "1234")
		assert.Equal(t, "fromquery", params["access_token"])
	})

	t.Run("decodes plus as space", func(t *testing.T) {
		t.Parallel()

		u, err := url.Parse("fb1234://authorize?error_message=user+denied+access")
		require.NoError(t, err)

		params := fburl.ExtractParameters(u, "1234")
		assert.Equal(t, "user denied access", params["error_message"])
	})

	t.Run("foreign URL yields empty map", func(t *testing.T) {
		t.Parallel()

		u, err := url.Parse("https://example.com/?access_token=tok")
		require.NoError(t, err)
		assert.Empty(t, fburl.ExtractParameters(u, "1234"))
	})

	t.Run("skips components without a value", func(t *testing.T) {
		t.Parallel()

		u, err := url.Parse("fb1234://authorize?danglingkey&access_token=tok")
		require.NoError(t, err)

		params := fburl.ExtractParameters(u, "1234")
		assert.Equal(t, map[string]string{"access_token": "tok"}, params)
	})
}

func TestExtractParametersRoundTrip(t *testing.T) {
	t.Parallel()

	original := map[string]string{
		"access_token":   "EAAtok/with=special chars",
		"granted_scopes": "email,public_profile",
		"denied_scopes":  "",
		"user_id":        "10001",
		"state":          `{"challenge":"abc XYZ"}`,
	}

	query := url.Values{}
	for k, v := range original {
		query.Set(k, v)
	}
	u, err := url.Parse("fb1234://authorize?" + query.Encode())
	require.NoError(t, err)

	recovered := fburl.ExtractParameters(u, "1234")
	assert.Equal(t, original, recovered)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", fburl.Decode("a+b%20c"))
	assert.Equal(t, `{"challenge":"x"}`, fburl.Decode("%7B%22challenge%22%3A%22x%22%7D"))
	assert.Equal(t, "plain", fburl.Decode("plain"))
	assert.Equal(t, "", fburl.Decode("bad%zzescape"))
}
