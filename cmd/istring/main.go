package main

import (
	"os"

	"github.com/msto63/istring/cmd/istring/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
