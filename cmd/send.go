// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/topfreegames/sqsforwarder/sender"
)

var message string

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "sends a single message through the handler",
	Long:  `builds an event from --message, runs it through the handler once and prints the result`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		defer a.Stop(context.Background())

		event := sender.Event{}
		if cmd.Flags().Changed("message") {
			event[sender.MessageKey] = message
		}
		result, err := a.HandleRequest(cmd.Context(), event)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVarP(&message, "message", "m", "", "the message body; omitted means the default message")
	RootCmd.AddCommand(sendCmd)
}
