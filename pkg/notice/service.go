package notice

import (
	"embed"

	"golang.org/x/exp/slog"

	"github.com/purevote/purevote/pkg/notification"
)

//go:embed templates/*
var templateFiles embed.FS

func loadTemplate(filename string) string {
	content, err := templateFiles.ReadFile(filename)
	if err != nil {
		slog.Error("Error reading template file!", "err", err, "filename", filename)
		return ""
	}
	return string(content)
}

// NewNotificationManager builds the notification manager with the email
// notifier and every notice template this application sends.
func NewNotificationManager(smtpConfig notification.SMTPConfig) (*notification.NotificationManager, error) {
	notificationManager := notification.NewNotificationManager()

	emailNotifier, err := notification.NewEmailNotifier(smtpConfig)
	if err != nil {
		return nil, err
	}

	notificationManager.RegisterNotifier(notification.EmailSystem, emailNotifier)

	if err := registerTemplates(notificationManager); err != nil {
		return nil, err
	}

	return notificationManager, nil
}

// NewMockNotificationManager builds the manager with a mock notifier, for
// tests and the demo command. The mock is returned so callers can inspect
// what was sent.
func NewMockNotificationManager() (*notification.NotificationManager, *notification.MockNotifier, error) {
	notificationManager := notification.NewNotificationManager()

	mock := &notification.MockNotifier{}
	notificationManager.RegisterNotifier(notification.EmailSystem, mock)

	if err := registerTemplates(notificationManager); err != nil {
		return nil, nil, err
	}

	return notificationManager, mock, nil
}

func registerTemplates(nm *notification.NotificationManager) error {
	err := nm.RegisterNotification(notification.VerificationCodeNotice, notification.EmailSystem, notification.NoticeTemplate{
		Subject: "Your PureVote Verification Code",
		Html:    loadTemplate("templates/email/verification_code.tmpl"),
	})
	if err != nil {
		slog.Error("failed to register verification code notification", "error", err)
		return err
	}

	err = nm.RegisterNotification(notification.PasswordResetNotice, notification.EmailSystem, notification.NoticeTemplate{
		Subject: "Reset Your PureVote Password",
		Html:    loadTemplate("templates/email/password_reset.tmpl"),
	})
	if err != nil {
		slog.Error("failed to register password reset notification", "error", err)
		return err
	}

	err = nm.RegisterNotification(notification.WelcomeNotice, notification.EmailSystem, notification.NoticeTemplate{
		Subject: "Welcome to PureVote",
		Html:    loadTemplate("templates/email/welcome.tmpl"),
	})
	if err != nil {
		slog.Error("failed to register welcome notification", "error", err)
		return err
	}

	return nil
}
