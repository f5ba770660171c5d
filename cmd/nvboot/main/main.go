package main

import (
	"fmt"
	"os"

	"github.com/devboot/nvboot/cmd/nvboot"
	"github.com/devboot/nvboot/pkg/errors"
	"github.com/devboot/nvboot/pkg/ui/output/styles"
)

func main() {
	rootCmd := nvboot.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+errors.UserMessage(err)))
		os.Exit(errors.ExitCode(err))
	}
}
