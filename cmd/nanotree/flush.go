package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanotree/nanotree/store"
)

var flushRootCmd = &cobra.Command{
	Use:   "flush",
	Short: "Resolve and print the current root id, verifying it's in the store",
	Long: `flush exists because every other nanotree subcommand flushes as part of
its own work (there's no in-process editor state to batch across CLI
invocations). This command just confirms the ref file's root id
resolves to a real tree in the store, which is useful after manually
editing .nanotree/HEAD or restoring a backup of the store directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, err := resolveAlgo()
		if err != nil {
			return err
		}
		rootID, err := readRoot(algo)
		if err != nil {
			return fmt.Errorf("read current root: %w", err)
		}

		if emptyID, eerr := emptyTreeID(algo); eerr == nil && rootID.Is(emptyID) {
			printSuccess("root: %s (empty tree)", rootID.String())
			return nil
		}

		disk := store.NewDisk(cfg.StoreDir, algo)
		if _, err := disk.FindTree(cliContext(), rootID); err != nil {
			return fmt.Errorf("root %s does not resolve: %w", rootID, err)
		}

		printSuccess("root: %s", rootID.String())
		return nil
	},
}
