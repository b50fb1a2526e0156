// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package forwarder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/topfreegames/sqsforwarder/metrics"
)

// MaxDelaySeconds is the largest per-message delay SQS accepts
const MaxDelaySeconds = 900

var (
	// ErrMissingMessageID is returned when SQS accepts a message without an id
	ErrMissingMessageID = errors.New("sqs returned no message id")
	// ErrInvalidDelay is returned for a delay outside 0..MaxDelaySeconds
	ErrInvalidDelay = errors.New("sqs.delaySeconds must be between 0 and 900")
)

// SQSAPI is the subset of *sqs.Client used by SQSForwarder
type SQSAPI interface {
	SendMessage(
		ctx context.Context,
		params *sqs.SendMessageInput,
		optFns ...func(*sqs.Options),
	) (*sqs.SendMessageOutput, error)
}

// SQSForwarder sends messages through the AWS SQS API
type SQSForwarder struct {
	client       SQSAPI
	delaySeconds int32
}

var _ Forwarder = (*SQSForwarder)(nil)

// NewSQSForwarder builds a forwarder over client, reading sqs.delaySeconds
// from config
func NewSQSForwarder(client SQSAPI, config *viper.Viper) (*SQSForwarder, error) {
	config.SetDefault("sqs.delaySeconds", 0)
	delay := config.GetInt("sqs.delaySeconds")
	if delay < 0 || delay > MaxDelaySeconds {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDelay, delay)
	}
	return &SQSForwarder{
		client:       client,
		delaySeconds: int32(delay),
	}, nil
}

// Forward sends body to queueURL and returns the SQS message id
func (f *SQSForwarder) Forward(ctx context.Context, queueURL, body string) (string, error) {
	ctx, span := otel.Tracer("sqsforwarder").Start(ctx, "forwarder.sqs.Forward")
	span.SetAttributes(attribute.String("sqs.queue_url", queueURL))
	defer span.End()

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(body),
	}
	if f.delaySeconds > 0 {
		input.DelaySeconds = f.delaySeconds
	}

	start := time.Now()
	out, err := f.client.SendMessage(ctx, input)
	elapsed := float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)
	if err != nil {
		metrics.SQSRequestLatency.WithLabelValues(metrics.StatusError).Observe(elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	metrics.SQSRequestLatency.WithLabelValues(metrics.StatusOK).Observe(elapsed)

	var id string
	if out != nil {
		id = aws.ToString(out.MessageId)
	}
	if id == "" {
		span.SetStatus(codes.Error, ErrMissingMessageID.Error())
		return "", ErrMissingMessageID
	}
	span.SetAttributes(attribute.String("sqs.message_id", id))
	return id, nil
}
