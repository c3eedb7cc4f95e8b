package main

import "github.com/mcoot/betdesk/internal/cli"

func main() {
	cli.Execute()
}
