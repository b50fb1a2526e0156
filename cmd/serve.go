// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/topfreegames/sqsforwarder/api"
)

var host string
var port int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "starts a local http server that invokes the handler",
	Long:  `starts a local http server exposing /invoke, /healthcheck and /metrics for debugging the handler outside Lambda`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger(cmd.ErrOrStderr())
		a, err := newApp(log)
		if err != nil {
			log.WithError(err).Fatal("failed to configure app")
		}
		server := api.NewApp(host, port, log, a)

		go func() {
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			<-sigs
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Stop(ctx); err != nil {
				log.WithError(err).Warn("failed to stop server")
			}
			a.Stop(ctx)
		}()

		if err := server.Run(); err != nil {
			log.WithError(err).Fatal("server stopped")
		}
	},
}

func init() {
	serveCmd.Flags().StringVarP(&host, "host", "b", "127.0.0.1", "the address of the interface to bind")
	serveCmd.Flags().IntVarP(&port, "port", "p", 5000, "the port to bind")
	RootCmd.AddCommand(serveCmd)
}
