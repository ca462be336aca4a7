package main

import "github.com/greenloop/marketplace/cmd"

func main() {
	cmd.Start()
}
