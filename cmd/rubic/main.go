package main

import (
	"os"

	"github.com/msto63/rubic/cmd/rubic/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
