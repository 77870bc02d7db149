// Command libxo-demo exercises the libxo package's emit/hierarchy machinery
// from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/acidburn0zzz/libxo-go/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
