package bridge

import (
	"net/url"

	"github.com/pkg/browser"
)

// URLOpener performs a direct OS-level open with no surface presented by
// this SDK. The error only reflects whether the OS accepted the request.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// OpenerFunc adapts a function to the URLOpener interface.
type OpenerFunc func(u *url.URL) error

func (f OpenerFunc) OpenURL(u *url.URL) error { return f(u) }

// SystemOpener opens URLs through the operating system's default handler.
func SystemOpener() URLOpener {
	return OpenerFunc(func(u *url.URL) error {
		return browser.OpenURL(u.String())
	})
}
