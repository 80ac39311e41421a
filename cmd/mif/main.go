package main

import "github.com/beetlebugorg/mif/cmd/mif/cmd"

func main() {
	cmd.Execute()
}
