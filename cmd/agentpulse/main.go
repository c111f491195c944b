package main

import "github.com/nlaakso/agentpulse/internal/cli"

func main() {
	cli.Execute()
}
