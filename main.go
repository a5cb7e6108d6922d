package main

import (
	"os"

	"github.com/notebus/notebus/pkg/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
