package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/blocksite/scaffold"
)

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <dir>",
		Short: "Create a new blocksite project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Creating new blocksite project: %s\n\n", dir)
			if err := scaffold.New(dir, out); err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Done! Next steps:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  cd %s\n", dir)
			fmt.Fprintln(out, "  blocksite build")
			fmt.Fprintln(out, "  blocksite serve")
			return nil
		},
	}
}
