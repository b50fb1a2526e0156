// sqsforwarder
// https://github.com/topfreegames/sqsforwarder
//
// Licensed under the MIT license:
// http://www.opensource.org/licenses/mit-license
// Copyright © 2026 Top Free Games <backend@tfgco.com>

package main

import "github.com/topfreegames/sqsforwarder/cmd"

func main() {
	cmd.Execute()
}
