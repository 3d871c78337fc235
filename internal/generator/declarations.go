package generator

import (
	"fmt"
	"strings"

	"github.com/saffronjam/go-glaze/internal/common"
)

// FileReport summarizes one generated file.
type FileReport struct {
	Kind    string // "declarations", "wrapper" or "loader"
	Path    string
	Emitted []string
	Skipped []string
}

// RenderDeclarations writes the native-declaration file content to w.
// Functions are emitted sorted by name; the admitted names are returned
// along with the discarded ones.
func (g *Generator) RenderDeclarations(w *common.Writer) (admitted, discarded []string) {
	api := g.config.API

	header := ""
	if api != "gl" {
		header = "_" + api
	}
	w.Println("from libc.stdint cimport *")
	w.Printf("cdef extern from 'glad%s.h' nogil:", header)

	w.Indented("# GLAD RELATED >>")
	w.Indented(common.GladRelated(api, g.conv.Features(g.defaultVersion()))...)

	w.Indented("# TYPES >>\n")
	w.Indented("ctypedef bint bool", "ctypedef bint BOOL")
	for _, t := range g.conv.Tables.Types {
		if t.Struct {
			continue
		}
		w.Indented(fmt.Sprintf("ctypedef %s %s", t.Native, common.NormalizeVoidList(t.Name)))
	}

	w.Println("\n    # FUNCTIONS >>\n")
	for _, name := range g.conv.SortedFunctionNames() {
		nf := g.conv.Normalize(g.conv.Functions[name])
		if ok, reason := g.Admit(nf); !ok {
			g.log.Debug("discarded", "function", name, "reason", reason)
			discarded = append(discarded, name)
			continue
		}
		w.Indented("cdef " + common.Declaration(nf, g.conv.HandlePrefix))
		admitted = append(admitted, name)
	}

	w.Println("\n#ENUMS >>")
	for _, group := range GroupEnums(g.conv.Tables.Enums, api) {
		w.Printf("\ncdef enum %s:", group.Name)
		for _, e := range group.Enums {
			w.Indented(e.Name)
		}
	}

	return admitted, discarded
}

// WriteDeclarations generates the native-declaration file into the destination directory.
func (g *Generator) WriteDeclarations() (FileReport, error) {
	path := DeclarationPath(g.config.Dest, g.config.API)
	g.log.Info("generating", "path", path)

	w := common.NewWriter()
	admitted, discarded := g.RenderDeclarations(w)
	if err := w.WriteToFile(path); err != nil {
		return FileReport{}, fmt.Errorf("writing declarations: %w", err)
	}

	return FileReport{Kind: "declarations", Path: path, Emitted: admitted, Skipped: discarded}, nil
}

// defaultVersion names the single feature synthesized for tables without features.
func (g *Generator) defaultVersion() string {
	return strings.ToUpper(g.config.API) + "_VERSION"
}
