package main

import "github.com/fabriqa-labs/fabriqa-cli/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
