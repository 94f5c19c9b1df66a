// Package login drives the browser-based Facebook authorization flow.
//
// A Manager runs one attempt at a time. Login builds the authorization
// URL for the requested permissions, embeds a single-use anti-replay
// challenge, and hands the URL to a bridge.Bridge. The provider redirects
// back into the application through its custom URL scheme; the host
// forwards that URL to OpenURL, where the manager validates the echoed
// challenge, reconciles granted and declined permissions against the
// request, persists the credential through pkg/tokencache and delivers a
// single terminal Result to the attempt's completion handler.
//
// Basic wiring:
//
//	var cfg login.Config
//	config.MustLoad(&cfg)
//
//	cache := tokencache.NewCache(store, prefs)
//	br := bridge.New(bridge.WithCallbackScheme(cfg.RedirectScheme()))
//	mgr := login.NewManager(cfg, br, cache, store, inspector)
//
//	err := mgr.Login(permissions.NewSet(permissions.Email), nil, func(res *login.Result, err error) {
//		switch {
//		case err != nil:
//			// terminal failure
//		case res.Cancelled:
//			// user backed out
//		default:
//			_ = res.Credential.TokenString()
//		}
//	})
//
// From the host's URL-open delegate:
//
//	claimed := mgr.OpenURL(u, sourceApplication, nil)
//
// Error semantics: Login returns ErrLoginInProgress when called while an
// attempt is active, and panics on developer misconfiguration (missing
// app ID, unregistered redirect scheme). Redirect validation failures
// surface ErrBadChallenge; provider-reported failures surface a
// *ProviderError; everything else folds into ErrUnknown.
package login
