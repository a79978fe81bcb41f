// main is the entry point for the grading CLI.
package main

import (
	"fmt"
	"os"

	"github.com/4NDR3-S01/ExposIA/cmd"
	"github.com/4NDR3-S01/ExposIA/internal/store"
)

func main() {
	err := cmd.Execute()
	store.CloseStores()
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
