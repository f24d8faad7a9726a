// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/bitwise-notes/internal/config"
	"github.com/MKhiriev/bitwise-notes/internal/logger"
	"github.com/MKhiriev/bitwise-notes/internal/notifier"
	"github.com/MKhiriev/bitwise-notes/models"
)

// Defaults applied when the corresponding configuration value is zero.
const (
	defaultNotifyWorkerCount = 2
	defaultNotifyQueueSize   = 64
	defaultDeliveryTimeout   = 5 * time.Second
)

// NotifyPool drains a bounded queue of share notifications with a fixed set
// of worker goroutines, handing each one to a [notifier.Sender].
//
// The pool implements the Worker interface for startup and exposes a
// non-blocking Dispatch for producers. When the queue is full, Dispatch
// drops the notification and reports it so the caller can log the loss.
// Delivery failures are logged and never retried.
type NotifyPool struct {
	sender notifier.Sender

	queue chan models.ShareNotification

	workerCount     int
	deliveryTimeout time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once

	logger *logger.Logger
}

// NewNotifyPool constructs a notification dispatch pool. Zero values in cfg
// fall back to package defaults.
func NewNotifyPool(sender notifier.Sender, cfg config.Workers, deliveryTimeout time.Duration, logger *logger.Logger) *NotifyPool {
	workerCount := cfg.NotifyWorkerCount
	if workerCount <= 0 {
		workerCount = defaultNotifyWorkerCount
	}

	queueSize := cfg.NotifyQueueSize
	if queueSize <= 0 {
		queueSize = defaultNotifyQueueSize
	}

	if deliveryTimeout <= 0 {
		deliveryTimeout = defaultDeliveryTimeout
	}

	return &NotifyPool{
		sender:          sender,
		queue:           make(chan models.ShareNotification, queueSize),
		workerCount:     workerCount,
		deliveryTimeout: deliveryTimeout,
		logger:          logger,
	}
}

// Run starts the worker goroutines. It returns immediately.
func (p *NotifyPool) Run() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

// Dispatch enqueues a notification without blocking. Returns false when the
// queue is full or the pool has been stopped.
func (p *NotifyPool) Dispatch(notification models.ShareNotification) (accepted bool) {
	defer func() {
		// Sending on the closed queue after Stop panics; treat it as a drop.
		if r := recover(); r != nil {
			accepted = false
		}
	}()

	select {
	case p.queue <- notification:
		return true
	default:
		return false
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish.
// Safe to call more than once.
func (p *NotifyPool) Stop() {
	p.stopOnce.Do(func() {
		close(p.queue)
	})
	p.wg.Wait()
}

func (p *NotifyPool) work() {
	defer p.wg.Done()

	for notification := range p.queue {
		p.deliver(notification)
	}
}

func (p *NotifyPool) deliver(notification models.ShareNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), p.deliveryTimeout)
	defer cancel()

	if err := p.sender.Send(ctx, notification); err != nil {
		p.logger.Err(err).
			Str("recipientEmail", notification.RecipientEmail).
			Msg("share notification delivery failed")
		return
	}

	p.logger.Debug().
		Str("recipientEmail", notification.RecipientEmail).
		Msg("share notification delivered")
}
