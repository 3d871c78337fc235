package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saffronjam/go-glaze/internal/common"
	"github.com/saffronjam/go-glaze/internal/logger"
)

var scalarTypes = []common.TypeAlias{
	{Name: "GLenum", Native: "unsigned int"},
	{Name: "GLuint", Native: "unsigned int"},
	{Name: "GLint", Native: "int"},
	{Name: "GLsizei", Native: "int"},
	{Name: "GLfloat", Native: "float"},
	{Name: "GLchar", Native: "char"},
	{Name: "GLubyte", Native: "unsigned char"},
	{Name: "GLvoid", Native: "void"},
	{Name: "GLsync", Native: "struct __GLsync *", Struct: true},
	{Name: "GLDEBUGPROC", Native: "void *"},
}

func baseTypes() map[string]string {
	return map[string]string{
		"GLenum":  "unsigned int",
		"GLuint":  "unsigned int",
		"GLint":   "int",
		"GLsizei": "int",
		"GLfloat": "float",
		"GLchar":  "char",
		"GLubyte": "unsigned char",
		"GLvoid":  "void",
	}
}

func void() common.Param { return common.Param{Type: "void"} }

func in(name, typ string) common.Param { return common.Param{Name: name, Type: typ} }

func ptr(name, typ string, depth int, isConst bool) common.Param {
	return common.Param{Name: name, Type: typ, PointerDepth: depth, Const: isConst}
}

func fixtureFunctions() []common.RawFunction {
	return []common.RawFunction{
		{Name: "glGetError", Return: in("", "GLenum")},
		{Name: "glClear", Return: void(), Params: []common.Param{in("mask", "GLbitfield")}},
		{Name: "glGenBuffers", Return: void(), Params: []common.Param{in("n", "GLsizei"), ptr("buffers", "GLuint", 1, false)}},
		{Name: "glBufferSubData", Return: void(), Params: []common.Param{in("target", "GLenum"), ptr("data", "void", 1, true)}},
		{Name: "glShaderSource", Return: void(), Params: []common.Param{
			in("shader", "GLuint"), in("count", "GLsizei"), ptr("string", "GLchar", 2, true), ptr("length", "GLint", 1, true),
		}},
		{Name: "glGetPointerv", Return: void(), Params: []common.Param{in("pname", "GLenum"), ptr("params", "void", 2, true)}},
		{Name: "glGetString", Return: ptr("", "GLubyte", 1, true), Params: []common.Param{in("name", "GLenum")}},
		{Name: "glDebugMessageCallback", Return: void(), Params: []common.Param{in("callback", "GLDEBUGPROC"), ptr("userParam", "void", 1, true)}},
		{Name: "glFenceSync", Return: in("", "GLsync"), Params: []common.Param{in("condition", "GLenum")}},
		{Name: "glFinish", Return: void(), Params: []common.Param{void()}},
	}
}

func fixtureTables() *common.Tables {
	return &common.Tables{
		Types:     append([]common.TypeAlias(nil), scalarTypes...),
		BaseTypes: baseTypes(),
		Functions: fixtureFunctions(),
		Enums: []common.EnumConstant{
			{Name: "GL_NO_ERROR", Value: "0"},
			{Name: "GL_POINTS", Value: "0x0000", Group: "PrimitiveType"},
			{Name: "GL_LINES", Value: "0x0001", Group: "PrimitiveType"},
			{Name: "GL_ONE_AS_FLOAT", Value: "((GLfloat)(1065353216))"},
		},
	}
}

func newTestGenerator(t *testing.T, tables *common.Tables, dest string) *Generator {
	t.Helper()

	config := common.DefaultConfig()
	config.Dest = dest

	conv, err := common.NewConverter(tables, config.HandlePrefix, config.UnhandledTypes)
	require.NoError(t, err)

	gen, err := New(config, conv, logger.Discard())
	require.NoError(t, err)
	return gen
}
