package main

import (
	"os"

	"github.com/duailibe/jcli-create/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
