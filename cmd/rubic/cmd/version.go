package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/rubic/pkg/core/version"
)

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutput(versionFormat, "text", "json", "yaml"); err != nil {
			return err
		}
		info := version.Get()
		if versionFormat != "text" {
			return writeStructured(cmd.OutOrStdout(), versionFormat, info)
		}
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().StringVarP(&versionFormat, "output", "o", "text", "output format: text, json or yaml")
}
