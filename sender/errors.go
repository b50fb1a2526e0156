// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package sender

import (
	"errors"
	"fmt"
)

// ErrEmptyQueueURL is returned when no destination queue is configured
var ErrEmptyQueueURL = errors.New("sqs queue url must be set")

// SendFailure wraps any error returned by the outbound send
type SendFailure struct {
	QueueURL string
	Err      error
}

func (e *SendFailure) Error() string {
	return fmt.Sprintf("sqs message publishing failed for queue %s: %v", e.QueueURL, e.Err)
}

func (e *SendFailure) Unwrap() error {
	return e.Err
}
