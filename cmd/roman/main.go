package main

import "github.com/vdparikh/roman/internal/cli"

func main() {
	cli.Execute()
}
