package main

import "adverse/internal/cli"

func main() {
	cli.Execute()
}
