package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var emptyTreeIDCmd = &cobra.Command{
	Use:   "empty-tree-id",
	Short: "Print the canonical empty-tree object id for the configured algorithm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, err := resolveAlgo()
		if err != nil {
			return err
		}
		id, err := emptyTreeID(algo)
		if err != nil {
			return err
		}
		fmt.Println(id.String())
		return nil
	},
}
