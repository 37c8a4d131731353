package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/latticehq/gatewaygen"
	"github.com/latticehq/gatewaygen/ir"
	"github.com/latticehq/gatewaygen/provider"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate the SDL schema and deployment manifest."`
	Check   CheckCmd   `cmd:"" help:"Extract and validate without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Out      string   `arg:"" help:"Output directory for generated artifacts."`
	Packages []string `arg:"" optional:"" help:"Go package patterns to extract from."`
	Config   string   `help:"Path to a gatewaygen.yaml config file." short:"c"`
}

func (c *GenCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	cfg.OutDir = c.Out
	if len(c.Packages) > 0 {
		cfg.Packages = c.Packages
	}

	result, err := gatewaygen.Generate(context.Background(), cfg)
	if err != nil {
		return err
	}
	reportDiagnostics(result.Diagnostics)
	reportWarnings(result.Warnings)
	return nil
}

type CheckCmd struct {
	Packages []string `arg:"" optional:"" help:"Go package patterns to extract from."`
	Config   string   `help:"Path to a gatewaygen.yaml config file." short:"c"`
}

func (c *CheckCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	if len(c.Packages) > 0 {
		cfg.Packages = c.Packages
	}
	if len(cfg.Packages) == 0 {
		return errors.New("no packages specified")
	}

	p := &provider.SourceProvider{}
	schema, diags, err := p.BuildSchema(context.Background(), provider.Options{
		Packages: cfg.Packages,
		Dir:      cfg.Dir,
	})
	if err != nil {
		return err
	}
	reportDiagnostics(diags)

	artifacts, err := gatewaygen.Render(schema)
	if err != nil {
		return err
	}
	reportWarnings(artifacts.Warnings)

	fmt.Printf("ok: %d types, %d operations\n", len(schema.Types), len(schema.Operations))
	return nil
}

// loadConfig reads the YAML config file. When path is empty, gatewaygen.yaml
// is used if it exists; otherwise an empty config is returned.
func loadConfig(path string) (*gatewaygen.Config, error) {
	if path == "" {
		if _, err := os.Stat("gatewaygen.yaml"); err != nil {
			return &gatewaygen.Config{}, nil
		}
		path = "gatewaygen.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg gatewaygen.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func reportDiagnostics(diags []provider.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", d)
	}
}

func reportWarnings(warnings []ir.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", w.Code, w.Message)
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("gatewaygen"),
		kong.Description("Generates a GraphQL gateway schema and resolver deployment manifest from annotated Go source."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
