package main

import "github.com/chriserin/tloc/cmd"

func main() {
	cmd.Execute()
}
