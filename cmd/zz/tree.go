package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var argsTree struct {
	format   string
	hidden   bool
	maxDepth int
}

var cmdTree = &cobra.Command{
	Use:   "tree [path] [depth]",
	Short: "print a directory tree",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		maxDepth := argsTree.maxDepth
		if len(args) > 1 {
			d, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("tree: invalid depth %q: %w", args[1], err)
			}
			maxDepth = d
		}

		root, err := walkTree(path, globalConfig, argsTree.hidden, maxDepth)
		if err != nil {
			return err
		}

		switch argsTree.format {
		case "list":
			renderListFormat(os.Stdout, root)
		case "tree", "":
			renderTreeFormat(os.Stdout, root)
		default:
			return fmt.Errorf("tree: unknown --format %q (want tree or list)", argsTree.format)
		}
		return nil
	},
}

func init() {
	cmdTree.Flags().StringVar(&argsTree.format, "format", "tree", "output format: tree or list")
	cmdTree.Flags().BoolVar(&argsTree.hidden, "hidden", false, "include hidden files and directories")
	cmdTree.Flags().IntVar(&argsTree.maxDepth, "max-depth", 0, "maximum depth to descend (0 = unlimited)")
}
