package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTables() *Tables {
	return &Tables{
		Types: []TypeAlias{
			{Name: "GLenum", Native: "unsigned int"},
			{Name: "GLfloat", Native: "float"},
			{Name: "GLvoid", Native: "void"},
			{Name: "GLsync", Native: "struct __GLsync *", Struct: true},
		},
		BaseTypes: map[string]string{
			"GLenum":  "unsigned int",
			"GLfloat": "float",
		},
		Functions: []RawFunction{
			{Name: "glGetError", Return: Param{Type: "GLenum"}},
			{Name: "glFinish", Return: Param{Type: "void"}},
		},
		Enums: []EnumConstant{
			{Name: "GL_NO_ERROR", Value: "0"},
			{Name: "GL_POINTS", Value: "0x0000", Group: "PrimitiveType"},
		},
	}
}

func newTestConverter(t *testing.T) *Converter {
	t.Helper()
	c, err := NewConverter(testTables(), "GL", DefaultUnhandledTypes)
	require.NoError(t, err)
	return c
}

func TestResolveBase(t *testing.T) {
	c := newTestConverter(t)

	cases := []struct {
		name     string
		param    Param
		base     string
		resolved bool
	}{
		{"base table first", Param{Type: "GLenum"}, "unsigned int", true},
		{"alias table", Param{Type: "GLvoid"}, "void", true},
		{"alias void pointer", Param{Type: "GLvoid", PointerDepth: 1}, VoidP, true},
		{"raw void pointer", Param{Type: "void", PointerDepth: 2, Const: true}, VoidP, true},
		{"plain void", Param{Type: "void"}, "void", true},
		{"primitive passthrough", Param{Type: "double"}, "double", true},
		{"unknown handle", Param{Type: "GLbitfield"}, "", false},
		{"struct alias", Param{Type: "GLsync"}, "", false},
		{"missing type", Param{}, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base, ok := c.ResolveBase(tc.param)
			assert.Equal(t, tc.resolved, ok)
			assert.Equal(t, tc.base, base)
		})
	}
}

func TestNormalize(t *testing.T) {
	c := newTestConverter(t)

	nf := c.Normalize(RawFunction{
		Name:   "glFenceSync",
		Return: Param{Type: "GLsync"},
		Params: []Param{
			{Name: "condition", Type: "GLenum"},
			{Name: "flags", Type: "GLbitfield"},
			{Name: "data", Type: "GLfloat", PointerDepth: 1, Const: true},
			{Name: "broken"},
		},
	})

	assert.Equal(t, "glFenceSync", nf.Name)
	assert.Equal(t, Unhandled, nf.Return.Native)
	require.Len(t, nf.Params, 4)
	assert.Equal(t, "unsigned int", nf.Params[0].Native)
	assert.Equal(t, "GLbitfield", nf.Params[1].Native)
	assert.Equal(t, "float", nf.Params[2].Native)
	assert.Equal(t, 1, nf.Params[2].PointerDepth)
	assert.True(t, nf.Params[2].Const)
	assert.Equal(t, Unhandled, nf.Params[3].Native)

	assert.True(t, c.IsUnhandled(nf.Return))
	assert.False(t, c.IsUnhandled(nf.Params[0]))
	assert.True(t, c.IsUnhandled(nf.Params[3]))
	assert.True(t, c.IsUnhandled(NormalizedParam{Param: Param{Type: "GLDEBUGPROC"}, Native: "void *"}))
}

func TestUnhandledMarkerWithCustomList(t *testing.T) {
	c, err := NewConverter(testTables(), "GL", []string{"GLDEBUGPROC"})
	require.NoError(t, err)

	nf := c.Normalize(RawFunction{
		Name:   "glBroken",
		Return: Param{Type: "GLsync"},
		Params: []Param{{Name: "x"}, {Name: "callback", Type: "GLDEBUGPROC"}},
	})
	assert.True(t, c.IsUnhandled(nf.Return))
	assert.True(t, c.IsUnhandled(nf.Params[0]))
	assert.True(t, c.IsUnhandled(nf.Params[1]))

	c, err = NewConverter(testTables(), "GL", nil)
	require.NoError(t, err)
	assert.True(t, c.IsUnhandled(c.Normalize(RawFunction{Name: "glBroken", Params: []Param{{Name: "x"}}}).Params[0]))
}

func TestNewConverterMalformed(t *testing.T) {
	cases := []struct {
		name   string
		tables Tables
		err    string
	}{
		{"empty function name", Tables{Functions: []RawFunction{{}}}, "functions[0]: empty name"},
		{"duplicate function", Tables{Functions: []RawFunction{{Name: "glFinish"}, {Name: "glFinish"}}}, "duplicate function glFinish"},
		{"duplicate type", Tables{Types: []TypeAlias{{Name: "GLenum"}, {Name: "GLenum"}}}, "duplicate type GLenum"},
		{"negative depth", Tables{Functions: []RawFunction{{Name: "glFoo", Params: []Param{{Type: "GLint", PointerDepth: -1}}}}}, "negative pointer depth"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tables := tc.tables
			_, err := NewConverter(&tables, "GL", nil)
			assert.ErrorContains(t, err, tc.err)
		})
	}
}

func TestSortedFunctionNames(t *testing.T) {
	c := newTestConverter(t)
	assert.Equal(t, []string{"glFinish", "glGetError"}, c.SortedFunctionNames())
}

func TestFeatures(t *testing.T) {
	c := newTestConverter(t)

	features := c.Features("GL_VERSION")
	require.Len(t, features, 1)
	assert.Equal(t, "GL_VERSION", features[0].Name)
	assert.Equal(t, []string{"glGetError", "glFinish"}, features[0].Functions)
	assert.Equal(t, []string{"GL_NO_ERROR", "GL_POINTS"}, features[0].Enums)

	c.Tables.Features = []Feature{{Name: "GL_VERSION_1_0", Functions: []string{"glFinish"}, Enums: []string{"GL_POINTS"}}}
	features = c.Features("GL_VERSION")
	require.Len(t, features, 1)

	funcs, err := c.FeatureFunctions(features[0])
	require.NoError(t, err)
	assert.Len(t, funcs, 1)
	assert.Contains(t, funcs, "glFinish")

	assert.Equal(t, []EnumConstant{{Name: "GL_POINTS", Value: "0x0000", Group: "PrimitiveType"}}, c.FeatureEnums(features[0]))

	_, err = c.FeatureFunctions(Feature{Name: "GL_ARB_missing", Functions: []string{"glMissing"}})
	assert.ErrorContains(t, err, "unknown function glMissing")
}

func TestLoadTables(t *testing.T) {
	dir := t.TempDir()

	yamlDoc := `
types:
  - name: GLenum
    native: unsigned int
  - name: GLsync
    native: "struct __GLsync *"
    struct: true
baseTypes:
  GLenum: unsigned int
functions:
  - name: glShaderSource
    return:
      type: void
    params:
      - name: shader
        type: GLuint
      - name: string
        type: GLchar
        pointer: 2
        const: true
      - name: broken
enums:
  - name: GL_POINTS
    value: "0x0000"
    group: PrimitiveType
features:
  - name: GL_VERSION_2_0
    functions: [glShaderSource]
    enums: [GL_POINTS]
`
	yamlPath := filepath.Join(dir, "tables.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlDoc), 0o644))

	tables, err := LoadTables(yamlPath)
	require.NoError(t, err)

	require.Len(t, tables.Types, 2)
	assert.True(t, tables.Types[1].Struct)
	assert.Equal(t, "unsigned int", tables.BaseTypes["GLenum"])
	require.Len(t, tables.Functions, 1)
	fn := tables.Functions[0]
	assert.Equal(t, "void", fn.Return.Type)
	require.Len(t, fn.Params, 3)
	assert.Equal(t, Param{Name: "string", Type: "GLchar", PointerDepth: 2, Const: true}, fn.Params[1])
	assert.Equal(t, "", fn.Params[2].Type)
	assert.Equal(t, "0x0000", tables.Enums[0].Value)
	assert.Equal(t, []string{"glShaderSource"}, tables.Features[0].Functions)

	jsonPath := filepath.Join(dir, "tables.json")
	jsonDoc := `{"functions": [{"name": "glFinish", "return": {"type": "void"}, "params": []}]}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0o644))

	tables, err = LoadTables(jsonPath)
	require.NoError(t, err)
	require.Len(t, tables.Functions, 1)
	assert.Equal(t, "glFinish", tables.Functions[0].Name)

	_, err = LoadTables(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}
