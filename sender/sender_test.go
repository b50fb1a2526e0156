// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package sender_test

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"

	"github.com/topfreegames/sqsforwarder/logger"
	"github.com/topfreegames/sqsforwarder/metrics"
	"github.com/topfreegames/sqsforwarder/sender"
)

var _ = Describe("MessageSender", func() {
	const queueURL = "https://sqs.us-east-1.amazonaws.com/000000000000/some-queue"

	var (
		s   *sender.MessageSender
		ctx context.Context
	)

	BeforeEach(func() {
		var err error
		s, err = sender.NewMessageSender(mockForwarder, queueURL, log)
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Describe("NewMessageSender", func() {
		It("should fail if queue url is empty", func() {
			s, err := sender.NewMessageSender(mockForwarder, "", log)
			Expect(err).To(MatchError(sender.ErrEmptyQueueURL))
			Expect(s).To(BeNil())
		})

		It("should keep the configured queue url", func() {
			Expect(s.QueueURL()).To(Equal(queueURL))
		})
	})

	Describe("Send", func() {
		It("should send the event message and return its id", func() {
			mockForwarder.EXPECT().
				Forward(gomock.Any(), queueURL, "hello").
				Return("5fea7756-0ea4-451a-a703-a558b933e274", nil)

			res, err := s.Send(ctx, sender.Event{"message": "hello"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal("Message sent successfully with ID: 5fea7756-0ea4-451a-a703-a558b933e274"))
		})

		It("should send the default message if event has no message", func() {
			mockForwarder.EXPECT().
				Forward(gomock.Any(), queueURL, "No message found").
				Return("some-id", nil)

			res, err := s.Send(ctx, sender.Event{"other": "field"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal("Message sent successfully with ID: some-id"))
		})

		It("should always send to the configured queue", func() {
			mockForwarder.EXPECT().
				Forward(gomock.Any(), queueURL, "hi").
				Return("some-id", nil)

			_, err := s.Send(ctx, sender.Event{
				"message":  "hi",
				"queueUrl": "https://sqs.us-east-1.amazonaws.com/000000000000/other-queue",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should make one independent call per invocation", func() {
			gomock.InOrder(
				mockForwarder.EXPECT().Forward(gomock.Any(), queueURL, "first").Return("id-1", nil),
				mockForwarder.EXPECT().Forward(gomock.Any(), queueURL, "second").Return("id-2", nil),
			)

			res, err := s.Send(ctx, sender.Event{"message": "first"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(HaveSuffix("id-1"))

			res, err = s.Send(ctx, sender.Event{"message": "second"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(HaveSuffix("id-2"))
		})

		It("should return the send error wrapped in a SendFailure", func() {
			sendErr := errors.New("AccessDenied: not authorized")
			mockForwarder.EXPECT().
				Forward(gomock.Any(), queueURL, "hello").
				Return("", sendErr)

			res, err := s.Send(ctx, sender.Event{"message": "hello"})
			Expect(res).To(BeEmpty())
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, sendErr)).To(BeTrue())

			var failure *sender.SendFailure
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(failure.QueueURL).To(Equal(queueURL))
			Expect(err.Error()).To(Equal(
				"sqs message publishing failed for queue " + queueURL + ": AccessDenied: not authorized",
			))
		})

		It("should pass the context through to the forwarder", func() {
			type key struct{}
			ctx = context.WithValue(ctx, key{}, "v")
			mockForwarder.EXPECT().
				Forward(gomock.Any(), queueURL, "hello").
				DoAndReturn(func(c context.Context, _, _ string) (string, error) {
					Expect(c.Value(key{})).To(Equal("v"))
					return "id", nil
				})

			_, err := s.Send(ctx, sender.Event{"message": "hello"})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("logging", func() {
		It("should log intent and success", func() {
			mockForwarder.EXPECT().Forward(gomock.Any(), queueURL, "hello").Return("some-id", nil)

			_, err := s.Send(ctx, sender.Event{"message": "hello"})
			Expect(err).NotTo(HaveOccurred())

			entries := hook.AllEntries()
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Level).To(Equal(logrus.InfoLevel))
			Expect(entries[0].Message).To(Equal("publishing message to queue"))
			Expect(entries[0].Data).To(HaveKeyWithValue("message", "hello"))
			Expect(entries[0].Data).To(HaveKeyWithValue("queueUrl", queueURL))
			Expect(entries[1].Level).To(Equal(logrus.InfoLevel))
			Expect(entries[1].Message).To(Equal("message sent successfully"))
			Expect(entries[1].Data).To(HaveKeyWithValue("messageId", "some-id"))
		})

		It("should log intent and failure", func() {
			sendErr := errors.New("boom")
			mockForwarder.EXPECT().Forward(gomock.Any(), queueURL, "hello").Return("", sendErr)

			_, err := s.Send(ctx, sender.Event{"message": "hello"})
			Expect(err).To(HaveOccurred())

			entries := hook.AllEntries()
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Message).To(Equal("publishing message to queue"))
			Expect(entries[1].Level).To(Equal(logrus.ErrorLevel))
			Expect(entries[1].Message).To(Equal("sqs message publishing failed"))
			Expect(entries[1].Data).To(HaveKeyWithValue(logrus.ErrorKey, sendErr))
		})

		It("should prefer the logger carried by the context", func() {
			ctx = logger.NewContext(ctx, log.WithField("requestId", "req-1"))
			mockForwarder.EXPECT().Forward(gomock.Any(), queueURL, "hello").Return("some-id", nil)

			_, err := s.Send(ctx, sender.Event{"message": "hello"})
			Expect(err).NotTo(HaveOccurred())
			for _, e := range hook.AllEntries() {
				Expect(e.Data).To(HaveKeyWithValue("requestId", "req-1"))
			}
		})
	})

	Describe("metrics", func() {
		It("should count successes and failures", func() {
			ok := metrics.MessagesSentCounter.WithLabelValues(queueURL, "true")
			failed := metrics.MessagesSentCounter.WithLabelValues(queueURL, "false")
			okBefore := testutil.ToFloat64(ok)
			failedBefore := testutil.ToFloat64(failed)

			gomock.InOrder(
				mockForwarder.EXPECT().Forward(gomock.Any(), queueURL, gomock.Any()).Return("id", nil),
				mockForwarder.EXPECT().Forward(gomock.Any(), queueURL, gomock.Any()).Return("", errors.New("boom")),
			)
			_, _ = s.Send(ctx, sender.Event{"message": "a"})
			_, _ = s.Send(ctx, sender.Event{"message": "b"})

			Expect(testutil.ToFloat64(ok)).To(Equal(okBefore + 1))
			Expect(testutil.ToFloat64(failed)).To(Equal(failedBefore + 1))
		})
	})
})
