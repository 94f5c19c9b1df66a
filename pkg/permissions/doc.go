// Package permissions models the permission (scope) sets exchanged with the
// login dialog: the set an application requests, the set the user granted,
// and the set the user declined.
//
// The wire form is a comma-separated string ("email,public_profile"); the
// in-memory form is an unordered Set supporting the intersection arithmetic
// a re-authorization flow needs.
//
// # Usage
//
//	requested := permissions.NewSet(permissions.Email)
//	granted := permissions.Parse("email,public_profile")
//
//	effective := granted.Intersect(requested)
//	// effective.Join() == "email"
package permissions
