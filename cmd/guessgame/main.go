package main

import "github.com/mcoot/numberguess/internal/cli"

func main() {
	cli.Execute()
}
