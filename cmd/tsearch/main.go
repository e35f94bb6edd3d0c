package main

import "tsearch/internal/cli"

func main() {
	cli.Execute()
}
