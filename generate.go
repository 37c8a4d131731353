// Package gatewaygen generates the two deployment artifacts for a
// serverless GraphQL gateway from annotated Go source: an SDL schema
// document and a resolver/data-source deployment manifest.
package gatewaygen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/latticehq/gatewaygen/ir"
	"github.com/latticehq/gatewaygen/manifest"
	"github.com/latticehq/gatewaygen/provider"
	"github.com/latticehq/gatewaygen/sdl"
	"github.com/latticehq/gatewaygen/sink"
)

// Artifacts holds the two rendered output documents.
type Artifacts struct {
	// SDL is the schema-definition-language document.
	SDL string

	// Manifest is the resolver/data-source deployment manifest.
	Manifest string

	// Warnings are non-fatal issues from extraction and rendering.
	Warnings []ir.Warning
}

// Result describes a completed end-to-end generation run.
type Result struct {
	*Artifacts

	// Diagnostics are non-fatal extraction problems. The offending
	// entities are absent from the artifacts.
	Diagnostics []provider.Diagnostic
}

// Generator renders artifacts from an IR schema. The zero value is ready to
// use.
type Generator struct {
	// Now overrides the manifest timestamp clock. Defaults to time.Now.
	// Output is byte-identical across runs for a fixed clock.
	Now func() time.Time
}

// Render validates the schema and renders both artifacts. Any rendering or
// validation failure is fatal: a partially written schema/manifest pair is
// worse than none.
func (g *Generator) Render(schema *ir.Schema) (*Artifacts, error) {
	if errs := schema.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid schema: %w", errors.Join(errs...))
	}

	sdlText, err := sdl.Render(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to render schema: %w", err)
	}

	m := &manifest.Emitter{Now: g.Now}
	manifestText, warnings, err := m.Render(schema.Operations)
	if err != nil {
		return nil, fmt.Errorf("failed to render manifest: %w", err)
	}

	return &Artifacts{
		SDL:      sdlText,
		Manifest: manifestText,
		Warnings: append(append([]ir.Warning(nil), schema.Warnings...), warnings...),
	}, nil
}

// Render renders both artifacts from an already-built IR with the default
// clock.
func Render(schema *ir.Schema) (*Artifacts, error) {
	g := &Generator{}
	return g.Render(schema)
}

// Generate runs extraction over the configured packages, renders both
// artifacts, and writes them to the output directory.
func Generate(ctx context.Context, cfg *Config) (*Result, error) {
	cfg = applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &provider.SourceProvider{}
	schema, diags, err := p.BuildSchema(ctx, provider.Options{
		Packages: cfg.Packages,
		Dir:      cfg.Dir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}

	artifacts, err := Render(schema)
	if err != nil {
		return nil, err
	}

	out := sink.NewFilesystemSink(cfg.OutDir)
	if err := out.WriteFile(ctx, cfg.SchemaFile, []byte(artifacts.SDL)); err != nil {
		return nil, fmt.Errorf("failed to write schema: %w", err)
	}
	if err := out.WriteFile(ctx, cfg.ManifestFile, []byte(artifacts.Manifest)); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	return &Result{Artifacts: artifacts, Diagnostics: diags}, nil
}
