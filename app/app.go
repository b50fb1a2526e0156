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

package app

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/spf13/viper"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/topfreegames/sqsforwarder/forwarder"
	"github.com/topfreegames/sqsforwarder/logger"
	"github.com/topfreegames/sqsforwarder/metrics"
	"github.com/topfreegames/sqsforwarder/sender"
)

// App is the app structure
type App struct {
	Sender       sender.Sender // tests manipulate this field
	config       *viper.Viper
	log          logger.Logger
	sqsClient    forwarder.SQSAPI
	spanExporter sdktrace.SpanExporter
	tracerFlush  func(context.Context) error
	tracerStop   func(context.Context) error
}

// Option customizes an App
type Option func(*App)

// WithSpanExporter sends spans to exporter instead of the OTLP endpoint.
// Only used when otel.enabled is set.
func WithSpanExporter(exporter sdktrace.SpanExporter) Option {
	return func(a *App) {
		a.spanExporter = exporter
	}
}

// NewApp creates a new App object. A nil sqsClient means one is built from
// the default AWS credential chain and the sqs.* config keys.
func NewApp(
	log logger.Logger,
	config *viper.Viper,
	sqsClient forwarder.SQSAPI,
	opts ...Option,
) (*App, error) {
	a := &App{
		config:    config,
		log:       log,
		sqsClient: sqsClient,
	}
	for _, opt := range opts {
		opt(a)
	}
	err := a.configure()
	return a, err
}

func (a *App) loadConfigurationDefaults() {
	a.config.SetDefault("sqs.region", "")
	a.config.SetDefault("sqs.endpoint", "")
	a.config.SetDefault("sqs.delaySeconds", 0)
	a.config.SetDefault("otel.enabled", false)
	a.config.SetDefault("otel.serviceName", "sqsforwarder")
	a.config.SetDefault("otel.endpoint", "localhost:4317")
	a.config.SetDefault("otel.samplingProbability", 0.1)
}

func (a *App) configure() error {
	a.loadConfigurationDefaults()
	if err := metrics.Configure(a.config); err != nil {
		return err
	}
	if err := a.configureTracing(context.Background()); err != nil {
		return err
	}
	return a.configureSender(context.Background())
}

func (a *App) configureSQSClient(ctx context.Context) error {
	if a.sqsClient != nil {
		return nil
	}
	var opts []func(*awsconfig.LoadOptions) error
	if region := a.config.GetString("sqs.region"); region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return err
	}
	endpoint := a.config.GetString("sqs.endpoint")
	a.sqsClient = sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return nil
}

func (a *App) configureSender(ctx context.Context) error {
	if err := a.configureSQSClient(ctx); err != nil {
		return err
	}
	f, err := forwarder.NewSQSForwarder(a.sqsClient, a.config)
	if err != nil {
		return err
	}
	s, err := sender.NewMessageSender(f, a.config.GetString("sqs.queueUrl"), a.log)
	if err != nil {
		return err
	}
	a.Sender = s
	return nil
}

// HandleRequest is the Lambda function handler
func (a *App) HandleRequest(ctx context.Context, event sender.Event) (string, error) {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		l := logger.FromContext(ctx, a.log).WithFields(map[string]interface{}{
			"requestId":    lc.AwsRequestID,
			"functionName": lambdacontext.FunctionName,
		})
		ctx = logger.NewContext(ctx, l)
	}
	defer a.flushTraces(ctx)
	return a.Sender.Send(ctx, event)
}

// LambdaHandler wraps HandleRequest with the runtime's payload decoding
func (a *App) LambdaHandler(opts ...lambda.Option) lambda.Handler {
	return lambda.NewHandlerWithOptions(a.HandleRequest, opts...)
}

// Run hands control to the Lambda runtime; it only returns on fatal errors
func (a *App) Run() {
	a.log.Info("starting lambda handler")
	lambda.Start(a.LambdaHandler(
		lambda.WithEnableSIGTERM(func() {
			a.Stop(context.Background())
		}),
	))
}

// Stop flushes and shuts down telemetry
func (a *App) Stop(ctx context.Context) {
	if a.tracerStop == nil {
		return
	}
	if err := a.tracerStop(ctx); err != nil {
		a.log.WithError(err).Warn("failed to shut down tracer provider")
	}
}
