package main

import "textvec/internal/cli"

func main() {
	cli.Execute()
}
