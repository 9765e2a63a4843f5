package main

import "github.com/emiliopalmerini/projectboard/internal/cli"

func main() {
	cli.Execute()
}
