// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/topfreegames/sqsforwarder/logger"
	"github.com/topfreegames/sqsforwarder/metrics"
	"github.com/topfreegames/sqsforwarder/middleware"
	"github.com/topfreegames/sqsforwarder/sender"
)

// Invoker runs one function invocation
type Invoker interface {
	HandleRequest(ctx context.Context, event sender.Event) (string, error)
}

// App is the local debugging http server
type App struct {
	host    string
	port    int
	log     logger.Logger
	Router  *mux.Router
	invoker Invoker
	server  *http.Server
}

// NewApp creates a new App object
func NewApp(host string, port int, log logger.Logger, invoker Invoker) *App {
	a := &App{
		host:    host,
		port:    port,
		log:     log,
		invoker: invoker,
	}
	a.AddRoutes()
	return a
}

// AddRoutes add routes to the router
func (a *App) AddRoutes() {
	a.Router = mux.NewRouter()

	a.Router.Handle("/healthcheck", middleware.Chain(
		NewHealthcheckHandler(a.log),
		middleware.NewLoggingMiddleware(a.log),
	)).Methods("GET").Name("healthcheck")

	a.Router.Handle("/invoke", middleware.Chain(
		NewInvokeHandler(a.invoker, a.log),
		middleware.NewLoggingMiddleware(a.log),
	)).Methods("POST").Name("invoke")

	a.Router.Handle("/metrics", metrics.Handler()).Methods("GET").Name("metrics")
}

// Run blocks serving http until Stop is called
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.host, a.port)
	a.server = &http.Server{
		Addr:           addr,
		Handler:        a.Router,
		ReadTimeout:    8 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	a.log.Infof("sqs forwarder debug server listening on %s", addr)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts the server down
func (a *App) Stop(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}
