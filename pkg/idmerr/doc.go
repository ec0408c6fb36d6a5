// Package idmerr provides structured error codes shared by the identity,
// wallet and join collaborators.
//
// Errors carry a stable ErrorCode so that callers (the session state machine,
// the API layer) can map provider failures to user-facing messages without
// string matching:
//
//	_, err := provider.SignIn(ctx, email, password)
//	if idmerr.IsCode(err, idmerr.ErrCodeUserNotFound) {
//		// show "No account with this email exists"
//	}
package idmerr
