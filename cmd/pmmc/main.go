// Command pmmc is the front-end compiler for P‑‑.
package main

import (
	"fmt"
	"os"

	"github.com/pmm-lang/pmmc/cmd/pmmc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}
