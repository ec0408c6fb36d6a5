package notification

import (
	"testing"
)

func TestNewNotificationManager(t *testing.T) {
	nm := NewNotificationManager()
	if nm == nil {
		t.Error("NewNotificationManager returned nil")
	}
	if nm.notifiers == nil {
		t.Error("notifiers map not initialized")
	}
	if nm.notificationRegistry == nil {
		t.Error("notificationRegistry map not initialized")
	}
}

func TestRegisterNotifier(t *testing.T) {
	nm := NewNotificationManager()
	mockNotifier := &MockNotifier{}

	// Test registering a notifier
	nm.RegisterNotifier(EmailSystem, mockNotifier)
	if n, exists := nm.notifiers[EmailSystem]; !exists {
		t.Error("Notifier not registered")
	} else if n != mockNotifier {
		t.Error("Wrong notifier registered")
	}

	// Test overwriting existing notifier
	newMockNotifier := &MockNotifier{}
	nm.RegisterNotifier(EmailSystem, newMockNotifier)
	if n := nm.notifiers[EmailSystem]; n != newMockNotifier {
		t.Error("Notifier not overwritten")
	}
}

func TestRegisterNotification(t *testing.T) {
	nm := NewNotificationManager()

	tests := []struct {
		name        string
		notifType   NoticeType
		system      NotificationSystem
		template    NoticeTemplate
		shouldError bool
	}{
		{
			name:        "Valid registration with both Text and Html",
			notifType:   ExampleNotice,
			system:      EmailSystem,
			template:    NoticeTemplate{Subject: "Example Email", Text: "This is an example email", Html: "<p>This is an example email</p>"},
			shouldError: false,
		},
		{
			name:        "Valid registration with Text only",
			notifType:   ExampleNotice,
			system:      EmailSystem,
			template:    NoticeTemplate{Subject: "Example Email", Text: "This is an example email"},
			shouldError: false,
		},
		{
			name:        "Empty notification type",
			notifType:   "",
			system:      EmailSystem,
			template:    NoticeTemplate{Subject: "Example Email", Text: "This is an example email"},
			shouldError: true,
		},
		{
			name:        "Empty system",
			notifType:   ExampleNotice,
			system:      "",
			template:    NoticeTemplate{Subject: "Example Email", Text: "This is an example email"},
			shouldError: true,
		},
		{
			name:        "Empty subject",
			notifType:   ExampleNotice,
			system:      EmailSystem,
			template:    NoticeTemplate{Subject: "", Text: "This is an example email"},
			shouldError: true,
		},
		{
			name:        "No content",
			notifType:   ExampleNotice,
			system:      EmailSystem,
			template:    NoticeTemplate{Subject: "Example Email"},
			shouldError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := nm.RegisterNotification(tt.notifType, tt.system, tt.template)
			if tt.shouldError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.shouldError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestSend(t *testing.T) {
	nm := NewNotificationManager()
	mockNotifier := &MockNotifier{}
	nm.RegisterNotifier(EmailSystem, mockNotifier)

	err := nm.RegisterNotification(ExampleNotice, EmailSystem, NoticeTemplate{
		Subject: "Example",
		Text:    "Hello {{.Name}}",
	})
	if err != nil {
		t.Fatalf("RegisterNotification failed: %v", err)
	}

	err = nm.Send(ExampleNotice, NotificationData{
		To:   "user@example.com",
		Data: map[string]string{"Name": "Ada"},
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(mockNotifier.SentNotifications) != 1 {
		t.Fatalf("Expected 1 sent notification, got %d", len(mockNotifier.SentNotifications))
	}
	if mockNotifier.SentNotifications[0].To != "user@example.com" {
		t.Errorf("Wrong recipient: %s", mockNotifier.SentNotifications[0].To)
	}

	// Unregistered type
	if err := nm.Send("unknown", NotificationData{To: "x@example.com"}); err == nil {
		t.Error("Expected error for unregistered notification type")
	}
}
