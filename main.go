// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/fopconsole/fop/cmd/fop"

func main() {
	cmd.Execute()
}
