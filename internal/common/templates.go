package common

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// DefaultGlueTemplate is the per-version load-and-verify function written
// into every wrapper file.
const DefaultGlueTemplate = `
# GLAD >>

def {{.Version}}_loadGL():
    if not {{.Prefix}}.gladLoad{{.API}}():
        return False
    return bool({{.Prefix}}.GLAD_{{.Feature}})`

// GladRelated lists the loader symbols declared in the native-declaration header.
func GladRelated(api string, features []Feature) []string {
	rows := []string{fmt.Sprintf("int gladLoad%s()", strings.ToUpper(api))}
	for _, f := range features {
		rows = append(rows, fmt.Sprintf("int GLAD_%s", f.Name))
	}
	return rows
}

// GlueData is the input of the glue template.
type GlueData struct {
	Version string // e.g. "GL_VERSION_3_3" or "ext_GL_ARB_debug_output"
	Feature string // the raw feature identifier
	Prefix  string // native module, e.g. "cGL"
	API     string // e.g. "GL"
}

// Glue holds a parsed glue template.
type Glue struct {
	tmpl *template.Template
}

func NewGlue(text string) (*Glue, error) {
	tmpl, err := template.New("glue").Funcs(template.FuncMap{
		"ToLower": strings.ToLower,
		"ToUpper": strings.ToUpper,
	}).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing glue template: %w", err)
	}
	return &Glue{tmpl: tmpl}, nil
}

func (g *Glue) Render(data GlueData) (string, error) {
	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering glue for %s: %w", data.Feature, err)
	}
	return buf.String(), nil
}
