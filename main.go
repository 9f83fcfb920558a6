package main

import "github.com/fretmap/fretmap/cmd"

func main() {
	cmd.Execute()
}
