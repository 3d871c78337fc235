package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/saffronjam/go-glaze/internal/common"
)

// RenderWrapper writes the wrapper file of one feature to w. Skipped
// functions produce no output; an *UnsupportedError aborts rendering.
func (g *Generator) RenderWrapper(w *common.Writer, feature common.Feature) (emitted, skipped []string, err error) {
	funcs, err := g.conv.FeatureFunctions(feature)
	if err != nil {
		return nil, nil, err
	}
	enums := g.conv.FeatureEnums(feature)

	apiName := strings.ToUpper(g.config.API)
	module := NativeModule(g.config.API)
	version := common.GetNameFromVersion(feature.Name)

	for _, d := range g.config.Directives {
		w.Println("#cython: " + d)
	}

	w.Printf("from glaze cimport %s", module)
	w.Println("from libc.stdint cimport *")
	w.Println("from libcpp.vector cimport vector")
	w.Println("from ..utils cimport *")

	w.Println("\n# TYPES >>\n")
	w.Println("ctypedef bint bool")
	w.Println("ctypedef bint BOOL")

	glue, err := g.glue.Render(common.GlueData{
		Version: version,
		Feature: feature.Name,
		Prefix:  module,
		API:     apiName,
	})
	if err != nil {
		return nil, nil, err
	}
	w.Block(glue)

	if len(funcs) > 0 {
		w.Println("\n# FUNCTIONS >>")

		names := make([]string, 0, len(funcs))
		for name := range funcs {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			res, err := g.Synthesize(funcs[name])
			if err != nil {
				return nil, nil, err
			}
			if res.Outcome == Skipped {
				skipped = append(skipped, name)
				continue
			}
			w.Println("\n" + res.Callable.String())
			emitted = append(emitted, name)
		}
	}

	if len(enums) > 0 {
		w.Println("\n# ENUMS >>")
		for _, group := range GroupEnums(enums, apiName) {
			w.Printf("\n# %s:", group.Name)
			for _, e := range group.Enums {
				w.Printf("%s = %s", e.Name, common.RewriteCast(e.Value))
			}
		}
	}

	return emitted, skipped, nil
}

// WriteWrapper generates the wrapper file of one feature. The API
// subdirectory of the destination must exist.
func (g *Generator) WriteWrapper(feature common.Feature) (FileReport, error) {
	path := WrapperPath(g.config.Dest, g.config.API, feature.Name)
	g.log.Info("generating", "path", path)

	w := common.NewWriter()
	emitted, skipped, err := g.RenderWrapper(w, feature)
	if err != nil {
		return FileReport{}, fmt.Errorf("%s: %w", feature.Name, err)
	}
	if err := w.WriteToFile(path); err != nil {
		return FileReport{}, fmt.Errorf("writing wrapper: %w", err)
	}

	return FileReport{Kind: "wrapper", Path: path, Emitted: emitted, Skipped: skipped}, nil
}
