// Package manifest exposes the two questions the login flow asks of the host
// application's manifest: whether a custom scheme is registered for inbound
// redirects, and whether a scheme is declared safe to query for outbound
// opens. The Static implementation is built from declared scheme lists; host
// platforms with a live manifest implement Inspector directly.
package manifest

import "slices"

// Inspector answers manifest questions as plain booleans. Implementations
// must be side-effect free; the login manager calls IsRegisteredScheme on
// every login attempt.
type Inspector interface {
	// IsRegisteredScheme reports whether the application has registered
	// scheme for incoming redirect URLs.
	IsRegisteredScheme(scheme string) bool

	// CanOpenScheme reports whether the application may query and open
	// outbound URLs with the given scheme.
	CanOpenScheme(scheme string) bool
}

// Ensure Static implements Inspector.
var _ Inspector = (*Static)(nil)

// Static is an Inspector backed by fixed scheme lists, mirroring how a
// mobile manifest declares them (URL types vs. application query schemes).
type Static struct {
	registered []string
	queryable  []string
}

// NewStatic builds an Inspector from the registered inbound schemes and the
// allowed outbound query schemes. Both slices are copied.
func NewStatic(registered, queryable []string) *Static {
	return &Static{
		registered: slices.Clone(registered),
		queryable:  slices.Clone(queryable),
	}
}

func (s *Static) IsRegisteredScheme(scheme string) bool {
	return slices.Contains(s.registered, scheme)
}

func (s *Static) CanOpenScheme(scheme string) bool {
	return slices.Contains(s.queryable, scheme)
}
