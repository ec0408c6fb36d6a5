package notification

type NotificationData struct {
	To      string            // Recipient identifier (e.g., email address, phone number)
	Subject string            // Optional: Subject for notifications like email
	Body    string            // The content or message to send
	Data    map[string]string // Template data (e.g., verification code, reset link)
}

type Notifier interface {
	Send(noticeType NoticeType, notification NotificationData, template NoticeTemplate) error
}
