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

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/topfreegames/sqsforwarder/app"
	"github.com/topfreegames/sqsforwarder/forwarder"
	"github.com/topfreegames/sqsforwarder/logger"
	logruswrapper "github.com/topfreegames/sqsforwarder/logger/logrus"
)

var cfgFile string
var debug bool
var json bool
var config *viper.Viper

// sqsClient is handed to every app built by the subcommands; nil means the
// AWS default credential chain
var sqsClient forwarder.SQSAPI

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sqsforwarder",
	Short: "forwards function events to an SQS queue",
	Long:  `forwards the message field of function events to an SQS queue`,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Inside the Lambda runtime a bare invocation defaults to the lambda command.
func Execute() {
	if args := lambdaDefaultArgs(os.Args[1:], os.Getenv); args != nil {
		RootCmd.SetArgs(args)
	}
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

// lambdaDefaultArgs returns the args that select the lambda command when the
// binary runs without arguments inside the Lambda runtime, nil otherwise
func lambdaDefaultArgs(args []string, getenv func(string) string) []string {
	if len(args) > 0 || getenv("AWS_LAMBDA_RUNTIME_API") == "" {
		return nil
	}
	return []string{lambdaCmd.Use}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().BoolVarP(&json, "json", "j", false, "json output mode")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "debug toggle")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "./config/local.yaml", "config file")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config = viper.New()
	if cfgFile != "" {
		config.SetConfigFile(cfgFile)
	}

	config.SetConfigType("yaml")
	config.SetEnvPrefix("sqsforwarder")
	config.AddConfigPath(".")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err == nil {
		fmt.Fprintln(RootCmd.ErrOrStderr(), "Using config file:", config.ConfigFileUsed())
	}
}

func newLogger(out io.Writer) logger.Logger {
	return logruswrapper.New(logruswrapper.Options{
		Debug: debug,
		JSON:  json,
		Out:   out,
	})
}

func newApp(log logger.Logger) (*app.App, error) {
	return app.NewApp(log, config, sqsClient)
}
