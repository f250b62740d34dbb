package main

import "github.com/openmusickit/tonalgo/cmd"

func main() {
	cmd.Execute()
}
