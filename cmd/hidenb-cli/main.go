package main

import "hidenb/cmd/hidenb-cli/cmd"

func main() {
	cmd.Execute()
}
