// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package sender

import (
	"context"
	"fmt"

	"github.com/topfreegames/sqsforwarder/forwarder"
	"github.com/topfreegames/sqsforwarder/logger"
	"github.com/topfreegames/sqsforwarder/metrics"
)

// Sender turns an invocation event into a single queued message
type Sender interface {
	Send(ctx context.Context, event Event) (string, error)
}

// MessageSender forwards the event message to a fixed queue
type MessageSender struct {
	logger    logger.Logger
	forwarder forwarder.Forwarder
	queueURL  string
}

var _ Sender = (*MessageSender)(nil)

// NewMessageSender returns a sender bound to queueURL
func NewMessageSender(
	f forwarder.Forwarder,
	queueURL string,
	log logger.Logger,
) (*MessageSender, error) {
	if queueURL == "" {
		return nil, ErrEmptyQueueURL
	}
	return &MessageSender{
		logger:    log,
		forwarder: f,
		queueURL:  queueURL,
	}, nil
}

// QueueURL is the destination every message is sent to
func (s *MessageSender) QueueURL() string {
	return s.queueURL
}

// Send forwards event's message and returns the confirmation text. Failures
// are logged and returned as *SendFailure. A logger stored in ctx with
// logger.NewContext takes precedence over the sender's own.
func (s *MessageSender) Send(ctx context.Context, event Event) (string, error) {
	message := event.Message()
	l := logger.FromContext(ctx, s.logger).WithField("queueUrl", s.queueURL)

	l.WithField("message", message).Info("publishing message to queue")

	id, err := s.forwarder.Forward(ctx, s.queueURL, message)
	if err != nil {
		metrics.MessagesSentCounter.WithLabelValues(s.queueURL, "false").Inc()
		l.WithError(err).Error("sqs message publishing failed")
		return "", &SendFailure{QueueURL: s.queueURL, Err: err}
	}
	metrics.MessagesSentCounter.WithLabelValues(s.queueURL, "true").Inc()
	l.WithField("messageId", id).Info("message sent successfully")

	return fmt.Sprintf("Message sent successfully with ID: %s", id), nil
}
