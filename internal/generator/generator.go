// Package generator writes the native-declaration file and the per-version
// wrapper files of one API from its parsed tables.
package generator

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/saffronjam/go-glaze/internal/common"
)

type Generator struct {
	config *common.Config
	conv   *common.Converter
	synth  *Synthesizer
	glue   *common.Glue
	log    *slog.Logger
}

func New(config *common.Config, conv *common.Converter, log *slog.Logger) (*Generator, error) {
	glue, err := common.NewGlue(config.GlueTemplate)
	if err != nil {
		return nil, err
	}

	return &Generator{
		config: config,
		conv:   conv,
		synth:  NewSynthesizer(conv, NativeModule(config.API)),
		glue:   glue,
		log:    log,
	}, nil
}

// NativeModule is the name of the native-declaration module, e.g. "cGL".
func NativeModule(api string) string {
	return "c" + strings.ToUpper(api)
}

// DeclarationPath is where the native-declaration file of api is written.
func DeclarationPath(dest, api string) string {
	return filepath.Join(dest, NativeModule(api)+".pxd")
}

// WrapperDir is the directory wrapper files of api are written to.
func WrapperDir(dest, api string) string {
	return filepath.Join(dest, strings.ToUpper(api))
}

// WrapperPath is where the wrapper file of one version is written.
func WrapperPath(dest, api, version string) string {
	return filepath.Join(WrapperDir(dest, api), common.GetNameFromVersion(version)+".pyx")
}

// Admit reports whether fn can be declared. The reason names the first
// unhandled slot otherwise.
func (g *Generator) Admit(fn common.NormalizedFunction) (bool, string) {
	if g.conv.IsUnhandled(fn.Return) {
		return false, fmt.Sprintf("unhandled RETURN type (%s)", fn.Return.Native)
	}
	for _, p := range fn.Params {
		if g.conv.IsUnhandled(p) {
			return false, fmt.Sprintf("unhandled PARAM type (%s)", p.Type)
		}
	}
	return true, ""
}

// Synthesize returns the wrapper synthesis of a single function. Functions
// that cannot be declared are skipped, since their wrapper would call an
// undeclared native function.
func (g *Generator) Synthesize(fn common.RawFunction) (Synthesis, error) {
	nf := g.conv.Normalize(fn)
	if ok, reason := g.Admit(nf); !ok {
		return Synthesis{Outcome: Skipped, Reason: reason}, nil
	}
	return g.synth.Synthesize(nf)
}

// Function returns the raw table entry of a function.
func (g *Generator) Function(name string) (common.RawFunction, bool) {
	fn, ok := g.conv.Functions[name]
	return fn, ok
}
