// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package cmd

import (
	"github.com/spf13/cobra"
)

// lambdaCmd represents the lambda command
var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "runs as an AWS Lambda function handler",
	Long:  `registers the forwarder with the AWS Lambda runtime and serves invocations`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger(cmd.ErrOrStderr())
		a, err := newApp(log)
		if err != nil {
			log.WithError(err).Fatal("failed to configure app")
		}
		a.Run()
	},
}

func init() {
	RootCmd.AddCommand(lambdaCmd)
}
