package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/store"
)

var catTreeCmd = &cobra.Command{
	Use:   "cat-tree [oid]",
	Short: "Print a tree's entries",
	Long:  `cat-tree prints the entries of the tree at oid, or the current root if oid is omitted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, err := resolveAlgo()
		if err != nil {
			return err
		}

		var id hash.Hash
		if len(args) == 1 {
			id, err = hash.FromHex(args[0])
			if err != nil {
				return fmt.Errorf("parse object id: %w", err)
			}
		} else {
			id, err = readRoot(algo)
			if err != nil {
				return fmt.Errorf("read current root: %w", err)
			}
		}

		disk := store.NewDisk(cfg.StoreDir, algo)
		tree, err := disk.FindTree(cliContext(), id)
		if err != nil {
			return fmt.Errorf("resolve tree %s: %w", id, err)
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			type entryView struct {
				Mode string `json:"mode"`
				Name string `json:"name"`
				OID  string `json:"oid"`
			}
			views := make([]entryView, len(tree.Entries))
			for i, e := range tree.Entries {
				views[i] = entryView{Mode: e.Mode.Octal(), Name: string(e.Name), OID: e.OID.String()}
			}
			return enc.Encode(views)
		}

		for _, e := range tree.Entries {
			fmt.Printf("%s %s\t%s\t%s\n", e.Mode.Octal(), e.Mode.String(), e.OID.String(), string(e.Name))
		}
		return nil
	},
}
