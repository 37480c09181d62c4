package cmd

import (
	"fmt"
	v1 "github.com/djcass44/debviz/pkg/api/v1"
	"github.com/djcass44/debviz/pkg/control"
	"github.com/drone/envsubst"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/yaml"
	"os"
	"path/filepath"
)

const (
	flagConfig    = "config"
	flagPackage   = "package"
	flagRepo      = "repo"
	flagVersion   = "version"
	flagTestMode  = "test-mode"
	flagOutput    = "output"
	flagASCIITree = "ascii-tree"
	flagMaxDepth  = "max-depth"
	flagField     = "field"
)

const (
	defaultOutput   = "graph.png"
	defaultMaxDepth = 10
)

func addVisualizeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagConfig, "c", "", "path to a configuration file")
	cmd.Flags().String(flagPackage, "", "package name to analyze")
	cmd.Flags().String(flagRepo, "", "repository url or path to a test repository")
	cmd.Flags().String(flagVersion, "", "package version")
	cmd.Flags().String(flagTestMode, "off", "test repository mode (on|off)")
	cmd.Flags().String(flagOutput, defaultOutput, "output image filename, empty to disable")
	cmd.Flags().String(flagASCIITree, "off", "ascii tree output mode (on|off)")
	cmd.Flags().Int(flagMaxDepth, defaultMaxDepth, "maximum dependency analysis depth")
	cmd.Flags().StringSlice(flagField, []string{control.FieldDepends}, "dependency fields to read")

	_ = cmd.MarkFlagFilename(flagConfig, ".yaml", ".yml", ".json")
}

// loadSpec builds the effective configuration. Values from the
// configuration file are used unless the matching flag was set.
func loadSpec(cmd *cobra.Command) (v1.VisualizeSpec, error) {
	flags := cmd.Flags()

	var spec v1.VisualizeSpec
	if path, _ := flags.GetString(flagConfig); path != "" {
		cfg, err := readConfig(path)
		if err != nil {
			return v1.VisualizeSpec{}, err
		}
		spec = cfg.Spec
	}

	setString(flags, flagPackage, &spec.Package)
	setString(flags, flagRepo, &spec.Repository)
	setString(flags, flagVersion, &spec.Version)
	setString(flags, flagOutput, &spec.Output)
	if err := setSwitch(flags, flagTestMode, &spec.TestMode); err != nil {
		return v1.VisualizeSpec{}, err
	}
	if err := setSwitch(flags, flagASCIITree, &spec.ASCIITree); err != nil {
		return v1.VisualizeSpec{}, err
	}
	if flags.Changed(flagMaxDepth) || spec.MaxDepth == 0 {
		spec.MaxDepth, _ = flags.GetInt(flagMaxDepth)
	}
	if flags.Changed(flagField) || len(spec.Fields) == 0 {
		spec.Fields, _ = flags.GetStringSlice(flagField)
	}

	repo, err := envsubst.EvalEnv(spec.Repository)
	if err != nil {
		return v1.VisualizeSpec{}, fmt.Errorf("expanding repository: %w", err)
	}
	spec.Repository = repo

	return spec, spec.Validate()
}

// setString copies the flag value into dst when the flag was set
// explicitly or dst has no value yet.
func setString(flags *pflag.FlagSet, name string, dst *string) {
	if flags.Changed(name) || *dst == "" {
		*dst, _ = flags.GetString(name)
	}
}

func setSwitch(flags *pflag.FlagSet, name string, dst *bool) error {
	if !flags.Changed(name) && *dst {
		return nil
	}
	s, _ := flags.GetString(name)
	switch s {
	case "on":
		*dst = true
	case "off":
		*dst = false
	default:
		return fmt.Errorf("invalid value for --%s, expecting 'on' or 'off': %s", name, s)
	}
	return nil
}

func readConfig(s string) (v1.Visualize, error) {
	f, err := os.Open(filepath.Clean(s))
	if err != nil {
		return v1.Visualize{}, err
	}
	defer f.Close()

	var config v1.Visualize
	if err := yaml.NewYAMLOrJSONDecoder(f, 4).Decode(&config); err != nil {
		return v1.Visualize{}, fmt.Errorf("decoding config: %w", err)
	}
	if config.Kind != "" && config.Kind != v1.KindVisualize {
		return v1.Visualize{}, fmt.Errorf("unexpected config kind: %s", config.Kind)
	}
	return config, nil
}
