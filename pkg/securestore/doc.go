// Package securestore defines the opaque-blob secure storage contract the
// login flow persists through: byte values under string keys, with a
// declared on-disk protection tier.
//
// Two implementations ship with the package: Memory for tests and
// development, and Keyring backed by the operating system credential store
// via github.com/zalando/go-keyring. Host applications with their own
// secure-storage facility implement Store directly.
//
// Logical stores must not share a key space; wrap a Store with Namespaced
// (or give each Keyring its own service name) so the token cache and the
// login challenge store cannot collide.
package securestore
