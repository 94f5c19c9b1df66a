// Package tokencache persists the credential produced by a successful login
// across application launches.
//
// The stored record pairs the credential with an installation marker: a
// random identifier generated once per installation and kept in plain
// app-preference storage. Secure storage outlives an app reinstall while
// preferences do not, so a credential whose paired marker no longer matches
// the current one belongs to a previous installation and is discarded on
// read. This is the reinstall guard.
//
// Storage failures follow the flow's tolerance rules: a failed read is a
// cache miss, a failed write leaves the credential unpersisted, and neither
// interrupts a login.
package tokencache
