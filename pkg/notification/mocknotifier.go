package notification

// MockNotifier is a Notifier for tests and the demo command. It records
// every notice instead of delivering it, keeping the payload and the notice
// type in parallel slices so a test can assert on either.
type MockNotifier struct {
	SentNotifications []NotificationData
	SentTypes         []NoticeType
}

// Send records the notice and always reports success.
func (m *MockNotifier) Send(noticeType NoticeType, notification NotificationData, template NoticeTemplate) error {
	m.SentNotifications = append(m.SentNotifications, notification)
	m.SentTypes = append(m.SentTypes, noticeType)
	return nil
}
