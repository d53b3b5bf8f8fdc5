package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var argsDeps struct {
	check            bool
	update           bool
	generateManifest bool
	manifestPath     string
	goModPath        string
}

// depsManifest mirrors the benchmark baseline tooling's dependency
// manifest (spec §6's "persisted state: optional benchmark baseline
// files", here realized as YAML per SPEC_FULL's domain-stack wiring).
type depsManifest struct {
	Module       string           `yaml:"module"`
	Requirements []depRequirement `yaml:"requirements"`
}

type depRequirement struct {
	Path     string `yaml:"path"`
	Version  string `yaml:"version"`
	Indirect bool   `yaml:"indirect,omitempty"`
}

var cmdDeps = &cobra.Command{
	Use:   "deps",
	Short: "inspect and record the module's third-party dependencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		reqs, err := readGoModRequirements(argsDeps.goModPath)
		if err != nil {
			return err
		}
		manifest := depsManifest{Module: moduleName(argsDeps.goModPath), Requirements: reqs}

		switch {
		case argsDeps.generateManifest:
			return writeManifest(argsDeps.manifestPath, manifest)
		case argsDeps.update:
			if err := writeManifest(argsDeps.manifestPath, manifest); err != nil {
				return err
			}
			fmt.Printf("deps: updated %s with %d requirements\n", argsDeps.manifestPath, len(reqs))
			return nil
		case argsDeps.check:
			return checkManifest(argsDeps.manifestPath, manifest)
		default:
			for _, r := range reqs {
				fmt.Println(r.Path, r.Version)
			}
			return nil
		}
	},
}

func writeManifest(path string, m depsManifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// checkManifest reports a mismatch (non-nil error) if path's recorded
// requirements differ from the module's current go.mod, matching spec
// §6's `deps --check` contract: verify, don't mutate.
func checkManifest(path string, current depsManifest) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("deps: %s does not exist; run `zz deps --generate-manifest` first", path)
		}
		return err
	}
	var recorded depsManifest
	if err := yaml.Unmarshal(data, &recorded); err != nil {
		return fmt.Errorf("deps: %s: %w", path, err)
	}
	if len(recorded.Requirements) != len(current.Requirements) {
		return fmt.Errorf("deps: %s is stale (%d recorded, %d in go.mod); run --update", path, len(recorded.Requirements), len(current.Requirements))
	}
	for i, r := range current.Requirements {
		if recorded.Requirements[i] != r {
			return fmt.Errorf("deps: %s is stale at %s; run --update", path, r.Path)
		}
	}
	fmt.Println("deps: up to date")
	return nil
}

// readGoModRequirements parses go.mod's require blocks directly: the
// module's own go.mod is small and flat enough that hand-parsing it
// avoids pulling in golang.org/x/mod for one CLI subcommand the core
// never touches.
func readGoModRequirements(path string) ([]depRequirement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []depRequirement
	inBlock := false
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "require ("):
			inBlock = true
			continue
		case inBlock && line == ")":
			inBlock = false
			continue
		case inBlock:
			out = append(out, parseRequireLine(line))
		case strings.HasPrefix(line, "require "):
			out = append(out, parseRequireLine(strings.TrimPrefix(line, "require ")))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseRequireLine(line string) depRequirement {
	indirect := strings.Contains(line, "// indirect")
	line = strings.SplitN(line, "//", 2)[0]
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return depRequirement{Path: line}
	}
	return depRequirement{Path: fields[0], Version: fields[1], Indirect: indirect}
}

func moduleName(goModPath string) string {
	data, err := os.ReadFile(goModPath)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "module ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "module "))
		}
	}
	return ""
}

func init() {
	cmdDeps.Flags().BoolVar(&argsDeps.check, "check", false, "verify the dependency manifest matches go.mod")
	cmdDeps.Flags().BoolVar(&argsDeps.update, "update", false, "regenerate the dependency manifest")
	cmdDeps.Flags().BoolVar(&argsDeps.generateManifest, "generate-manifest", false, "write the dependency manifest")
	cmdDeps.Flags().StringVar(&argsDeps.manifestPath, "manifest", "deps-manifest.yaml", "path to the dependency manifest")
	cmdDeps.Flags().StringVar(&argsDeps.goModPath, "go-mod", "go.mod", "path to go.mod")
}
