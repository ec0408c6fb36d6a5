package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purevote/purevote/pkg/idmerr"
	"github.com/purevote/purevote/pkg/notice"
	"github.com/purevote/purevote/pkg/notification"
	"github.com/purevote/purevote/pkg/session"
)

func TestCreateAccountAndSignIn(t *testing.T) {
	p := NewInMemoryProvider()
	ctx := context.Background()

	user, err := p.CreateAccount(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	signed, err := p.SignIn(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, signed.UserID)

	// Email lookup is case insensitive.
	_, err = p.SignIn(ctx, "ADA@example.com", "secret123")
	assert.NoError(t, err)
}

func TestCreateAccountFailures(t *testing.T) {
	p := NewInMemoryProvider()
	ctx := context.Background()

	_, err := p.CreateAccount(ctx, "not-an-email", "secret123")
	assert.True(t, idmerr.IsCode(err, idmerr.ErrCodeInvalidEmail))

	_, err = p.CreateAccount(ctx, "ada@example.com", "short")
	assert.True(t, idmerr.IsCode(err, idmerr.ErrCodeWeakPassword))

	_, err = p.CreateAccount(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	_, err = p.CreateAccount(ctx, "Ada@Example.com", "secret123")
	assert.True(t, idmerr.IsCode(err, idmerr.ErrCodeEmailAlreadyInUse))
}

func TestSignInFailures(t *testing.T) {
	p := NewInMemoryProvider()
	ctx := context.Background()

	_, err := p.CreateAccount(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)

	_, err = p.SignIn(ctx, "ghost@example.com", "secret123")
	assert.True(t, idmerr.IsCode(err, idmerr.ErrCodeUserNotFound))

	_, err = p.SignIn(ctx, "ada@example.com", "wrong-password")
	assert.True(t, idmerr.IsCode(err, idmerr.ErrCodeWrongPassword))

	require.NoError(t, p.DisableAccount("ada@example.com"))
	_, err = p.SignIn(ctx, "ada@example.com", "secret123")
	assert.True(t, idmerr.IsCode(err, idmerr.ErrCodeUserDisabled))
}

func TestUpdateDisplayName(t *testing.T) {
	p := NewInMemoryProvider()
	ctx := context.Background()

	user, err := p.CreateAccount(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, p.UpdateDisplayName(ctx, user.UserID, "Ada Lovelace"))

	var got *session.AuthState
	unsub := p.OnAuthStateChanged(func(auth *session.AuthState) {
		got = auth
	})
	defer unsub()

	_, err = p.SignIn(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada Lovelace", got.DisplayName)
}

func TestAuthStateListeners(t *testing.T) {
	p := NewInMemoryProvider()
	ctx := context.Background()

	var events []*session.AuthState
	unsub := p.OnAuthStateChanged(func(auth *session.AuthState) {
		events = append(events, auth)
	})

	_, err := p.CreateAccount(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, p.SignOut(ctx))
	p.InvalidateSession()

	require.Len(t, events, 3)
	assert.NotNil(t, events[0])
	assert.Nil(t, events[1])
	assert.Nil(t, events[2])

	unsub()
	_, err = p.SignIn(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestSendPasswordReset(t *testing.T) {
	nm, mock, err := notice.NewMockNotificationManager()
	require.NoError(t, err)

	p := NewInMemoryProvider(WithNotificationManager(nm))
	ctx := context.Background()

	err = p.SendPasswordReset(ctx, "ghost@example.com")
	assert.True(t, idmerr.IsCode(err, idmerr.ErrCodeUserNotFound))
	assert.Empty(t, mock.SentNotifications)

	_, err = p.CreateAccount(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, p.SendPasswordReset(ctx, "ada@example.com"))

	require.Len(t, mock.SentNotifications, 1)
	assert.Equal(t, notification.PasswordResetNotice, mock.SentTypes[0])
	sent := mock.SentNotifications[0]
	assert.Equal(t, "ada@example.com", sent.To)
	assert.Equal(t, "ada@example.com", sent.Data["Email"])
	assert.NotEmpty(t, sent.Data["ResetLink"])
}
