// SPDX-License-Identifier: MPL-2.0

package main

import cmd "varsweep/cmd/varsweep"

func main() {
	cmd.Execute()
}
