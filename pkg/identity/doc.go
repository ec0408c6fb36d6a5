// Package identity provides credential backends implementing
// session.IdentityProvider.
package identity
