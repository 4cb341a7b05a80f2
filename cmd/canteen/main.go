package main

import (
	"os"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
