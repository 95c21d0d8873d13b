package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanotree/nanotree/hash"
)

var setRootCmd = &cobra.Command{
	Use:   "set-root <oid>",
	Short: "Point the ref file at oid without touching the store",
	Long: `set-root is the CLI counterpart of Editor.SetRoot: it discards whatever
the ref file currently points at in favor of oid, trusting the caller
that oid already resolves (or will, by the next write).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := resolveAlgo(); err != nil {
			return err
		}
		id, err := hash.FromHex(args[0])
		if err != nil {
			return fmt.Errorf("parse object id: %w", err)
		}
		if err := writeRoot(id); err != nil {
			return err
		}
		printSuccess("root: %s", id.String())
		return nil
	},
}
