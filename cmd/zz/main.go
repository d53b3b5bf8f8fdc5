// Command zz is the thin CLI shell (spec §6) driving the core packages:
// tree (directory listing), prompt (extractor-driven file concatenation),
// format (formatter), and deps (dependency manifest bookkeeping). None of
// the argument parsing here is part of the core's hard engineering; it
// exists only to exercise it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zztool/zz/config"
)

var argsRoot struct {
	configPath string
}

var globalConfig config.Config

var cmdRoot = &cobra.Command{
	Use:   "zz",
	Short: "Stratified parsing and fact engine",
	Long:  `zz parses, extracts, formats, and lints JSON, ZON, CSS, HTML, TypeScript, Zig, and Svelte source.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, diags := config.Load(argsRoot.configPath)
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d.Format())
		}
		globalConfig = cfg
		return nil
	},
}

func Execute() error {
	cmdRoot.PersistentFlags().StringVar(&argsRoot.configPath, "config", "zz.zon", "path to the zz.zon config file")

	cmdRoot.AddCommand(cmdTree)
	cmdRoot.AddCommand(cmdPrompt)
	cmdRoot.AddCommand(cmdFormat)
	cmdRoot.AddCommand(cmdDeps)

	return cmdRoot.Execute()
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
