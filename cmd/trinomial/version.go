package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/trinomial"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of trinomial",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "trinomial version %s\n", strings.TrimSpace(trinomial.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
