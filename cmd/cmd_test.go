// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package cmd

import (
	"bytes"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/topfreegames/sqsforwarder/sender"
)

var _ = Describe("Cmd", func() {
	Describe("lambdaDefaultArgs", func() {
		env := func(vars map[string]string) func(string) string {
			return func(key string) string { return vars[key] }
		}
		inLambda := env(map[string]string{"AWS_LAMBDA_RUNTIME_API": "127.0.0.1:9001"})

		It("should select the lambda command for a bare invocation inside the runtime", func() {
			Expect(lambdaDefaultArgs(nil, inLambda)).To(Equal([]string{"lambda"}))
			Expect(lambdaDefaultArgs([]string{}, inLambda)).To(Equal([]string{"lambda"}))
		})

		It("should keep explicit arguments inside the runtime", func() {
			Expect(lambdaDefaultArgs([]string{"send", "-m", "hi"}, inLambda)).To(BeNil())
		})

		It("should do nothing outside the runtime", func() {
			Expect(lambdaDefaultArgs(nil, env(nil))).To(BeNil())
			Expect(lambdaDefaultArgs([]string{"serve"}, env(nil))).To(BeNil())
		})
	})

	Describe("send", func() {
		const queueURL = "https://sqs.us-east-1.amazonaws.com/000000000000/sqsforwarder-test"
		var out *bytes.Buffer

		BeforeEach(func() {
			out = &bytes.Buffer{}
			RootCmd.SetOut(out)
			RootCmd.SetErr(io.Discard)
		})

		AfterEach(func() {
			message = ""
			sendCmd.Flags().Lookup("message").Changed = false
		})

		run := func(args ...string) error {
			RootCmd.SetArgs(append(args, "--config", "../config/test.yaml"))
			return RootCmd.Execute()
		}

		It("should forward --message and print the confirmation", func() {
			mockSQS.EXPECT().SendMessage(gomock.Any(), gomock.Eq(&sqs.SendMessageInput{
				QueueUrl:    aws.String(queueURL),
				MessageBody: aws.String("hello"),
			})).Return(&sqs.SendMessageOutput{MessageId: aws.String("some-id")}, nil)

			Expect(run("send", "--message", "hello")).To(Succeed())
			Expect(out.String()).To(Equal("Message sent successfully with ID: some-id\n"))
		})

		It("should send the default message without --message", func() {
			mockSQS.EXPECT().SendMessage(gomock.Any(), gomock.Eq(&sqs.SendMessageInput{
				QueueUrl:    aws.String(queueURL),
				MessageBody: aws.String(sender.DefaultMessage),
			})).Return(&sqs.SendMessageOutput{MessageId: aws.String("some-id")}, nil)

			Expect(run("send")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("some-id"))
		})

		It("should return the send failure", func() {
			sqsErr := errors.New("AccessDenied")
			mockSQS.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(nil, sqsErr)

			err := run("send", "-m", "hello")
			Expect(errors.Is(err, sqsErr)).To(BeTrue())
			var failure *sender.SendFailure
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(failure.QueueURL).To(Equal(queueURL))
			Expect(out.String()).To(BeEmpty())
		})
	})
})
