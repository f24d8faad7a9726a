// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notifier delivers share notifications to the external
// notification service over HTTP.
//
// Delivery is best-effort by contract: callers treat any returned error as a
// diagnostic, never as a reason to undo the share that triggered it.
package notifier

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/bitwise-notes/models"
)

// Sender delivers a single share notification.
type Sender interface {
	// Send delivers the notification. It returns an error when the request
	// fails or the notification service rejects it.
	Send(ctx context.Context, notification models.ShareNotification) error
}
