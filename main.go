package main

import "github.com/mines/noguess/cmd"

func main() {
	cmd.Execute()
}
