// Package fburl builds and recognizes the URLs that carry a browser-redirect
// login flow: the outbound authorization dialog URL and the inbound
// custom-scheme redirect that returns control to the application.
//
// All functions are pure; nothing here performs network I/O. Construction is
// deterministic regardless of parameter-map iteration order, so callers can
// rely on stable output for caching and tests can assert on decoded queries.
//
// # Usage
//
//	u, err := fburl.BuildAuthorizationURL("m.", "", fburl.OAuthPath, map[string]string{
//	    "client_id":    "1234",
//	    "redirect_uri": fburl.RedirectURI("1234"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Later, when the OS hands back a URL:
//	if fburl.IsRedirect(incoming, "1234") {
//	    params := fburl.ExtractParameters(incoming, "1234")
//	    // params merges query and fragment, query wins on key ties
//	}
package fburl
