package main

import (
	"kaleido/cmd"
	"os"
)

func main() {
	os.Exit(cmd.RunCompiler())
}
