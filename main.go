package main

import "referral-reconciler/cmd"

func main() {
	cmd.Execute()
}
