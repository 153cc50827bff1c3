package main

import "gam-provisioner/cmd"

func main() {
	cmd.Execute()
}
