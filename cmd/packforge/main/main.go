package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/packforge/cmd/packforge"
	"github.com/arthur-debert/packforge/pkg/output"
)

func main() {
	rootCmd := packforge.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if rerr := output.NewRenderer(os.Stderr).Error(err); rerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
