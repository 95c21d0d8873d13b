package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nanotree/nanotree/commit"
	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/store"
)

var (
	commitAuthorName  string
	commitAuthorEmail string
	commitParent      string
	commitMessage     string
)

var commitTreeCmd = &cobra.Command{
	Use:   "commit-tree [oid]",
	Short: "Wrap a tree (the current root, by default) in a commit object",
	Long: `commit-tree builds and persists a commit object pointing at oid (or the
current root if omitted), using --author-name/--author-email for both the
author and committer identity and the current time for both timestamps.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if commitMessage == "" {
			return fmt.Errorf("--message is required")
		}
		if commitAuthorName == "" || commitAuthorEmail == "" {
			return fmt.Errorf("--author-name and --author-email are required")
		}

		algo, err := resolveAlgo()
		if err != nil {
			return err
		}

		var treeID hash.Hash
		if len(args) == 1 {
			treeID, err = hash.FromHex(args[0])
			if err != nil {
				return fmt.Errorf("parse tree id: %w", err)
			}
		} else {
			treeID, err = readRoot(algo)
			if err != nil {
				return fmt.Errorf("read current root: %w", err)
			}
		}

		var parent hash.Hash
		if commitParent != "" {
			parent, err = hash.FromHex(commitParent)
			if err != nil {
				return fmt.Errorf("parse --parent: %w", err)
			}
		}

		now := time.Now()
		identity := commit.Author{Name: commitAuthorName, Email: commitAuthorEmail, Time: now}

		disk := store.NewDisk(cfg.StoreDir, algo)
		c, err := commit.Write(cliContext(), disk, algo, treeID, parent,
			identity, commit.Committer(identity), commitMessage)
		if err != nil {
			return fmt.Errorf("build commit: %w", err)
		}

		printSuccess("commit: %s", c.Hash.String())
		return nil
	},
}

func init() {
	commitTreeCmd.Flags().StringVar(&commitAuthorName, "author-name", "", "Author and committer name")
	commitTreeCmd.Flags().StringVar(&commitAuthorEmail, "author-email", "", "Author and committer email")
	commitTreeCmd.Flags().StringVar(&commitParent, "parent", "", "Parent commit id (omit for a root commit)")
	commitTreeCmd.Flags().StringVar(&commitMessage, "message", "", "Commit message")
}
