package notifier

import "errors"

var (
	// ErrNotificationRejected indicates that the notification service
	// answered with a non-2xx status.
	ErrNotificationRejected = errors.New("notification rejected by the notification service")
)
