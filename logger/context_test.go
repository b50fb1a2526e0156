// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package logger_test

import (
	"bytes"
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/topfreegames/sqsforwarder/logger"
	logruswrapper "github.com/topfreegames/sqsforwarder/logger/logrus"
)

var _ = Describe("Context", func() {
	It("should return the fallback when ctx has no logger", func() {
		fallback := &logger.NullLogger{}
		Expect(logger.FromContext(context.Background(), fallback)).To(BeIdenticalTo(fallback))
	})

	It("should return the logger stored in ctx", func() {
		stored := logruswrapper.New(logruswrapper.Options{})
		ctx := logger.NewContext(context.Background(), stored)
		Expect(logger.FromContext(ctx, &logger.NullLogger{})).To(BeIdenticalTo(stored))
	})
})

var _ = Describe("Logrus", func() {
	It("should write json with fields when asked to", func() {
		buf := &bytes.Buffer{}
		l := logruswrapper.New(logruswrapper.Options{JSON: true, Out: buf})
		l.WithField("queueUrl", "q").Info("publishing message to queue")

		line := map[string]interface{}{}
		Expect(json.Unmarshal(buf.Bytes(), &line)).To(Succeed())
		Expect(line).To(HaveKeyWithValue("msg", "publishing message to queue"))
		Expect(line).To(HaveKeyWithValue("queueUrl", "q"))
		Expect(line).To(HaveKeyWithValue("source", "sqsforwarder"))
	})

	It("should drop debug lines unless debug is on", func() {
		buf := &bytes.Buffer{}
		logruswrapper.New(logruswrapper.Options{Out: buf}).Debug("hidden")
		Expect(buf.String()).To(BeEmpty())

		logruswrapper.New(logruswrapper.Options{Debug: true, Out: buf}).Debug("shown")
		Expect(buf.String()).To(ContainSubstring("shown"))
	})
})
