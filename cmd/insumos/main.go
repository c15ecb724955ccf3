// Command insumos demonstrates queue, stack, search and sort routines over
// synthetic diagnostic-supply consumption records.
package main

import (
	"os"

	"github.com/roach88/insumos/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
