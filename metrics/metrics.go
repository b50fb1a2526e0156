// MIT License
//
// Copyright (c) 2026 Top Free Games
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	// LabelQueue is the SQS queue url the message was sent to
	LabelQueue = "queue"
	// LabelSuccess is "true" or "false"
	LabelSuccess = "success"
	// LabelStatus is the status of the request. OK if success or ERROR if fail
	LabelStatus = "status"

	// StatusOK labels a successful SQS request
	StatusOK = "OK"
	// StatusError labels a failed SQS request
	StatusError = "ERROR"
)

var defaultLatencyBuckets = []float64{3, 5, 10, 50, 100, 300, 500, 1000, 5000}

var (
	// MessagesSentCounter counts messages handed to SQS by queue and outcome
	MessagesSentCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sqsforwarder",
		Subsystem: "sender",
		Name:      "messages_sent_total",
		Help:      "Messages submitted to SQS",
	},
		[]string{LabelQueue, LabelSuccess},
	)

	// SQSRequestLatency observes the SendMessage round trip in ms
	SQSRequestLatency = newSQSRequestLatency(defaultLatencyBuckets)
)

func newSQSRequestLatency(buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sqsforwarder",
			Subsystem: "sqs",
			Name:      "response_time_ms",
			Help:      "the response time in ms of SQS SendMessage",
			Buckets:   buckets,
		},
		[]string{LabelStatus},
	)
}

func latencyBuckets(config *viper.Viper) []float64 {
	// in milliseconds
	const configKey = "prometheus.buckets.latency"
	config.SetDefault(configKey, defaultLatencyBuckets)
	switch v := config.Get(configKey).(type) {
	case []float64:
		if len(v) > 0 {
			return v
		}
	case []interface{}:
		// yaml lists decode untyped
		buckets := make([]float64, 0, len(v))
		for _, b := range v {
			f, err := cast.ToFloat64E(b)
			if err != nil {
				return defaultLatencyBuckets
			}
			buckets = append(buckets, f)
		}
		if len(buckets) > 0 {
			return buckets
		}
	}
	return defaultLatencyBuckets
}

// RegisterMetrics is a wrapper to handle prometheus.AlreadyRegisteredError;
// it only returns an error if the metric wasn't already registered and there was an
// actual error registering it.
func RegisterMetrics(collectors []prometheus.Collector) error {
	for _, collector := range collectors {
		err := prometheus.Register(collector)
		if err != nil {
			var alreadyRegisteredError prometheus.AlreadyRegisteredError
			if !errors.As(err, &alreadyRegisteredError) {
				return err
			}
		}
	}
	return nil
}

// Configure rebuilds the latency histogram with the configured buckets and
// registers every collector on the default registry. Call it once at startup,
// before any message is sent.
func Configure(config *viper.Viper) error {
	latency := newSQSRequestLatency(latencyBuckets(config))
	if err := prometheus.Register(latency); err != nil {
		var alreadyRegisteredError prometheus.AlreadyRegisteredError
		if !errors.As(err, &alreadyRegisteredError) {
			return err
		}
		// keep observing into the collector the registry already exposes
		if existing, ok := alreadyRegisteredError.ExistingCollector.(*prometheus.HistogramVec); ok {
			latency = existing
		}
	}
	SQSRequestLatency = latency
	return RegisterMetrics([]prometheus.Collector{MessagesSentCounter})
}

// Handler exposes the default registry in prometheus format
func Handler() http.Handler {
	return promhttp.Handler()
}
