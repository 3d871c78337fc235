package generator

import (
	"fmt"
	"log/slog"

	"github.com/saffronjam/go-glaze/internal/common"
)

// Report lists every file written by a run.
type Report struct {
	Files []FileReport
}

// Features returns the features wrappers are generated for, in table order.
func (g *Generator) Features() []common.Feature {
	return g.conv.Features(g.defaultVersion())
}

// Versions returns the feature identifiers wrappers are generated for.
func (g *Generator) Versions() []string {
	features := g.Features()
	versions := make([]string, len(features))
	for i, f := range features {
		versions[i] = f.Name
	}
	return versions
}

// Run writes the declaration file, one wrapper per feature and, when a
// loader file is configured, appends the aggregate loader. It stops at the
// first error.
func (g *Generator) Run() (*Report, error) {
	report := &Report{}

	decl, err := g.WriteDeclarations()
	if err != nil {
		return report, err
	}
	report.Files = append(report.Files, decl)

	for _, feature := range g.Features() {
		fr, err := g.WriteWrapper(feature)
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, fr)
	}

	if g.config.LoaderFile != "" {
		fr, err := WriteLoader(g.log, g.config.LoaderFile, g.Versions())
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, fr)
	}

	return report, nil
}

// Setup loads the tables named by config and returns a ready generator.
func Setup(config *common.Config, log *slog.Logger) (*Generator, error) {
	tables, err := common.LoadTables(config.Tables)
	if err != nil {
		return nil, err
	}

	conv, err := common.NewConverter(tables, config.HandlePrefix, config.UnhandledTypes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.Tables, err)
	}

	return New(config, conv, log)
}
