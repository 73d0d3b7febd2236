package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/packforge/cmd/packforge"
	"github.com/arthur-debert/packforge/internal/version"
)

func main() {
	rootCmd := packforge.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PACKFORGE",
		Section: "1",
		Source:  "packforge " + version.Version,
		Manual:  "packforge manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
