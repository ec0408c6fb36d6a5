package notification

import (
	"fmt"
)

// NotificationSystem represents a delivery channel (e.g., email, SMS).
type NotificationSystem string

// NoticeType represents a kind of notice (e.g., "verification_code").
type NoticeType string

const (
	EmailSystem NotificationSystem = "email"
	SMSSystem   NotificationSystem = "sms"

	// VerificationCodeNotice carries the 6-digit join verification code.
	VerificationCodeNotice NoticeType = "verification_code"
	// PasswordResetNotice carries password reset instructions.
	PasswordResetNotice NoticeType = "password_reset"
	// WelcomeNotice is sent after a successful signup.
	WelcomeNotice NoticeType = "welcome"

	ExampleNotice NoticeType = "example"
)

// NoticeTemplate holds the subject and body templates for one notice.
type NoticeTemplate struct {
	Subject string
	Text    string
	Html    string
}

// NotificationManager manages notifiers and notice templates.
type NotificationManager struct {
	notifiers            map[NotificationSystem]Notifier
	notificationRegistry map[NoticeType]map[NotificationSystem]NoticeTemplate
}

// NewNotificationManager creates and returns a new NotificationManager.
func NewNotificationManager() *NotificationManager {
	return &NotificationManager{
		notifiers:            make(map[NotificationSystem]Notifier),
		notificationRegistry: make(map[NoticeType]map[NotificationSystem]NoticeTemplate),
	}
}

// RegisterNotifier registers a notifier for a specific system.
func (nm *NotificationManager) RegisterNotifier(system NotificationSystem, notifier Notifier) {
	nm.notifiers[system] = notifier
}

// RegisterNotification adds a notice template to the registry.
func (nm *NotificationManager) RegisterNotification(notifType NoticeType, system NotificationSystem, template NoticeTemplate) error {
	if notifType == "" || system == "" {
		return fmt.Errorf("invalid input: notification type and system cannot be empty")
	}
	if template.Subject == "" {
		return fmt.Errorf("invalid input: template subject cannot be empty")
	}
	if template.Text == "" && template.Html == "" {
		return fmt.Errorf("invalid input: template must have text or html content")
	}

	if _, exists := nm.notificationRegistry[notifType]; !exists {
		nm.notificationRegistry[notifType] = make(map[NotificationSystem]NoticeTemplate)
	}

	nm.notificationRegistry[notifType][system] = template
	return nil
}

// Send delivers the notice through every system registered for its type.
func (nm *NotificationManager) Send(notifType NoticeType, notification NotificationData) error {
	systemTemplates, exists := nm.notificationRegistry[notifType]
	if !exists {
		return fmt.Errorf("no templates registered for notification type: %s", notifType)
	}

	sent := false
	for system, template := range systemTemplates {
		notifier, exists := nm.notifiers[system]
		if !exists {
			continue
		}
		if err := notifier.Send(notifType, notification, template); err != nil {
			return fmt.Errorf("failed to send %s via %s: %w", notifType, system, err)
		}
		sent = true
	}

	if !sent {
		return fmt.Errorf("no notifier registered for notification type: %s", notifType)
	}
	return nil
}
