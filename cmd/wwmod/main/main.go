package main

import (
	"fmt"
	"os"

	"github.com/zapsharkrs/whiskerwood-modtools/cmd/wwmod"
	"github.com/zapsharkrs/whiskerwood-modtools/pkg/ui/styles"
)

func main() {
	rootCmd := wwmod.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
