package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zztool/zz/extract"
	"github.com/zztool/zz/lexer"
	"github.com/zztool/zz/parser"
)

var argsPrompt struct {
	signatures bool
	types      bool
	docs       bool
	imports    bool
	tests      bool
	structure  bool
	errors     bool
	full       bool
}

var cmdPrompt = &cobra.Command{
	Use:   "prompt <glob...>",
	Short: "concatenate extracted file contents for feeding to an LLM prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := expandGlobs(args, globalConfig)
		if err != nil {
			return err
		}
		flags := extract.Flags{
			Signatures: argsPrompt.signatures,
			Types:      argsPrompt.types,
			Docs:       argsPrompt.docs,
			Imports:    argsPrompt.imports,
			Tests:      argsPrompt.tests,
			Structure:  argsPrompt.structure,
			Errors:     argsPrompt.errors,
			Full:       argsPrompt.full,
		}

		outputs := make([][]byte, len(paths))
		g := newBoundedGroup()
		for i, p := range paths {
			i, p := i, p
			g.Go(func() {
				out, err := extractFile(p, flags)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", p, err)
					return
				}
				outputs[i] = out
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i, p := range paths {
			if outputs[i] == nil {
				continue
			}
			fmt.Printf("--- %s ---\n", p)
			os.Stdout.Write(outputs[i])
			if len(outputs[i]) == 0 || outputs[i][len(outputs[i])-1] != '\n' {
				fmt.Println()
			}
		}
		return nil
	},
}

func extractFile(path string, flags extract.Flags) ([]byte, error) {
	lang, ok := languageForPath(path)
	if !ok {
		return nil, fmt.Errorf("unrecognized file extension")
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	toks := lexer.Tokenize(lang, src)
	tree := parser.Parse(lang, toks, src, parser.Options{}, nil)
	return extract.Extract(tree, flags), nil
}

func init() {
	cmdPrompt.Flags().BoolVar(&argsPrompt.signatures, "signatures", false, "emit function/type signatures only")
	cmdPrompt.Flags().BoolVar(&argsPrompt.types, "types", false, "emit type declarations")
	cmdPrompt.Flags().BoolVar(&argsPrompt.docs, "docs", false, "emit doc comments")
	cmdPrompt.Flags().BoolVar(&argsPrompt.imports, "imports", false, "emit import statements")
	cmdPrompt.Flags().BoolVar(&argsPrompt.tests, "tests", false, "emit test declarations")
	cmdPrompt.Flags().BoolVar(&argsPrompt.structure, "structure", false, "emit structural skeleton")
	cmdPrompt.Flags().BoolVar(&argsPrompt.errors, "errors", false, "emit error nodes only")
	cmdPrompt.Flags().BoolVar(&argsPrompt.full, "full", false, "emit the full, unmodified source")
}
