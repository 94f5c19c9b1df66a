package bridge

import "net/url"

// PresentationContext identifies where a browser surface may be presented
// (the host's topmost view controller, window, or equivalent). The bridge
// never inspects it; it is handed through to the Surface.
type PresentationContext any

// Surface is an embedded, always-full-screen browser surface wrapped in a
// disappearance-observing container. The bridge is its only caller.
type Surface interface {
	// Present shows u on top of pc. onDone fires when the surface
	// disappears through the user's own affordance rather than a
	// programmatic Dismiss.
	Present(pc PresentationContext, u *url.URL, onDone func()) error

	// Dismiss tears the surface down, then runs then (which may be nil)
	// after teardown completes.
	Dismiss(then func())
}
