// Package notification provides a unified interface for sending notices via
// multiple channels.
//
// The NotificationManager holds a registry of notice templates keyed by
// NoticeType and NotificationSystem, plus one Notifier per system. Callers
// send by type only; the manager renders the registered template with the
// notice data and delivers through every configured channel:
//
//	nm := notification.NewNotificationManager()
//	nm.RegisterNotifier(notification.EmailSystem, emailNotifier)
//	nm.RegisterNotification(notification.VerificationCodeNotice, notification.EmailSystem, tmpl)
//
//	nm.Send(notification.VerificationCodeNotice, notification.NotificationData{
//	    To:   "ada@example.com",
//	    Data: map[string]string{"Code": "123456"},
//	})
//
// A MockNotifier records sent notices for tests.
package notification
