// Package common contains shared constants and sentinel errors used across
// recmarket components.
package common

// IdentityTokenHeaderName is the gRPC metadata key used to carry the
// caller's identity token on outbound requests.
const IdentityTokenHeaderName = "identity_token"

// AnonymousPrincipal is the textual principal of an unauthenticated caller.
const AnonymousPrincipal = "2vxsx-fae"

// IsAnonymous reports whether principal denotes an unauthenticated caller.
func IsAnonymous(principal string) bool {
	return principal == "" || principal == AnonymousPrincipal
}
