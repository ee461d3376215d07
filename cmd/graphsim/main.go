// SPDX-License-Identifier: MIT

// Command graphsim simulates expression data from signed regulatory graphs.
package main

func main() {
	Execute()
}
