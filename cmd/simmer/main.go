package main

import "github.com/shigedangao/simmer/internal/cli"

func main() {
	cli.Execute()
}
