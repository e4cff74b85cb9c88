package main

import "github.com/philipparndt/gocad/cmd"

func main() {
	cmd.Execute()
}
