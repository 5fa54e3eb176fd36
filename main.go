package main

import (
	"os"

	"studyorg/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
