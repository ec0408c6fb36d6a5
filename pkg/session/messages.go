package session

import (
	"fmt"

	"github.com/purevote/purevote/pkg/idmerr"
)

// Success and demo-mode confirmation messages shown to the user.
const (
	fallbackSignIn = "Failed to sign in. Please try again."
	fallbackSignUp = "Failed to create account. Please try again."
	fallbackReset  = "Failed to send reset email. Please try again."
)

var signInMessages = map[idmerr.ErrorCode]string{
	idmerr.ErrCodeInvalidEmail:  "Invalid email address format",
	idmerr.ErrCodeUserDisabled:  "This account has been disabled",
	idmerr.ErrCodeUserNotFound:  "No account with this email exists",
	idmerr.ErrCodeWrongPassword: "Incorrect password",
}

var signUpMessages = map[idmerr.ErrorCode]string{
	idmerr.ErrCodeEmailAlreadyInUse: "An account with this email already exists",
	idmerr.ErrCodeInvalidEmail:      "Invalid email address format",
	idmerr.ErrCodeWeakPassword:      "Password is too weak",
}

var resetMessages = map[idmerr.ErrorCode]string{
	idmerr.ErrCodeUserNotFound: "No account found with this email",
	idmerr.ErrCodeInvalidEmail: "Invalid email address format",
}

func messageFor(messages map[idmerr.ErrorCode]string, fallback string, err error) string {
	if msg, ok := messages[idmerr.GetCode(err)]; ok {
		return msg
	}
	return fallback
}

func welcomeMessage(email string) string {
	return fmt.Sprintf("Welcome back, %s!", email)
}

func demoSignInMessage(email string) string {
	return fmt.Sprintf("Demo mode: Would sign in with %s", email)
}

func demoSignUpMessage(email string) string {
	return fmt.Sprintf("Demo mode: Would create account for %s", email)
}

func demoResetMessage(email string) string {
	return fmt.Sprintf("Demo mode: Would send password reset to %s", email)
}
