package main

import "github.com/mcoot/rockpaperscissors/internal/cli"

func main() {
	cli.Execute()
}
