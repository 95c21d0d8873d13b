package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanotree/nanotree"
	"github.com/nanotree/nanotree/hash"
	"github.com/nanotree/nanotree/object"
	"github.com/nanotree/nanotree/store"
)

var upsertMode string

var upsertCmd = &cobra.Command{
	Use:   "upsert <path> <oid>",
	Short: "Insert or replace the entry at path, flushing immediately",
	Long: `upsert reads the current root from the ref file (creating an empty tree
if there is none yet), applies a single Upsert at path with the given
mode and object id, flushes the result, and writes the new root back to
the ref file.

<oid> may be the literal word "null" to insert a placeholder leaf, which
Write will drop.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureStoreDir(); err != nil {
			return err
		}
		algo, err := resolveAlgo()
		if err != nil {
			return err
		}
		mode, ok := object.ParseOctalMode(upsertMode)
		if !ok {
			if m, ok2 := parseModeName(upsertMode); ok2 {
				mode = m
			} else {
				return fmt.Errorf("unrecognized --mode %q", upsertMode)
			}
		}

		var id hash.Hash
		if args[1] == "null" {
			id = hash.Null(algo.Size())
		} else {
			id, err = hash.FromHex(args[1])
			if err != nil {
				return fmt.Errorf("parse object id: %w", err)
			}
		}

		ctx := cliContext()
		disk := store.NewDisk(cfg.StoreDir, algo)

		rootID, err := readRoot(algo)
		if err != nil {
			return fmt.Errorf("read current root: %w", err)
		}

		var root *object.Tree
		if emptyID, eerr := emptyTreeID(algo); eerr == nil && rootID.Is(emptyID) {
			root = &object.Tree{}
		} else {
			root, err = disk.FindTree(ctx, rootID)
			if err != nil {
				return fmt.Errorf("resolve current root %s: %w", rootID, err)
			}
		}

		ed, err := nanotree.New(root, disk, nanotree.WithHashAlgorithm(algo))
		if err != nil {
			return err
		}

		if _, err := ed.UpsertString(ctx, args[0], mode, id); err != nil {
			return fmt.Errorf("upsert %q: %w", args[0], err)
		}

		newRoot, err := ed.Write(ctx, disk)
		if err != nil {
			return fmt.Errorf("flush: %w", err)
		}

		if err := writeRoot(newRoot); err != nil {
			return fmt.Errorf("write ref: %w", err)
		}

		printSuccess("root: %s", newRoot.String())
		return nil
	},
}

func init() {
	upsertCmd.Flags().StringVar(&upsertMode, "mode", "blob", "Entry mode: tree, blob, exec, link, commit (or an octal mode string)")
}

func parseModeName(name string) (object.EntryMode, bool) {
	switch name {
	case "tree":
		return object.ModeTree, true
	case "blob":
		return object.ModeBlob, true
	case "exec":
		return object.ModeBlobExecutable, true
	case "link":
		return object.ModeLink, true
	case "commit":
		return object.ModeCommit, true
	default:
		return 0, false
	}
}
