// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package forwarder

import "context"

//go:generate mockgen -destination=../mocks/forwarder.go -package=mocks github.com/topfreegames/sqsforwarder/forwarder Forwarder,SQSAPI

// Forwarder hands a single message body to a queue and returns the
// identifier the queue assigned to it
type Forwarder interface {
	Forward(ctx context.Context, queueURL, body string) (string, error)
}
