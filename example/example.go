package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/saffronjam/go-glaze/internal/common"
	"github.com/saffronjam/go-glaze/internal/generator"
	"github.com/saffronjam/go-glaze/internal/logger"
)

func main() {
	tables := &common.Tables{
		Types: []common.TypeAlias{
			{Name: "GLenum", Native: "unsigned int"},
			{Name: "GLuint", Native: "unsigned int"},
			{Name: "GLsizei", Native: "int"},
			{Name: "GLfloat", Native: "float"},
			{Name: "GLchar", Native: "char"},
			{Name: "GLvoid", Native: "void"},
		},
		BaseTypes: map[string]string{
			"GLenum":  "unsigned int",
			"GLuint":  "unsigned int",
			"GLsizei": "int",
			"GLfloat": "float",
			"GLchar":  "char",
			"GLvoid":  "void",
		},
		Functions: []common.RawFunction{
			{
				Name:   "glClear",
				Return: common.Param{Type: "void"},
				Params: []common.Param{{Name: "mask", Type: "GLbitfield"}},
			},
			{
				Name:   "glGenBuffers",
				Return: common.Param{Type: "void"},
				Params: []common.Param{
					{Name: "n", Type: "GLsizei"},
					{Name: "buffers", Type: "GLuint", PointerDepth: 1},
				},
			},
			{
				Name:   "glShaderSource",
				Return: common.Param{Type: "void"},
				Params: []common.Param{
					{Name: "shader", Type: "GLuint"},
					{Name: "count", Type: "GLsizei"},
					{Name: "string", Type: "GLchar", PointerDepth: 2, Const: true},
					{Name: "length", Type: "GLint", PointerDepth: 1, Const: true},
				},
			},
		},
		Enums: []common.EnumConstant{
			{Name: "GL_COLOR_BUFFER_BIT", Value: "0x00004000"},
			{Name: "GL_ONE_AS_FLOAT", Value: "((GLfloat)(1065353216))", Group: "Special"},
		},
	}

	dest, err := os.MkdirTemp("", "glaze")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dest)

	config := common.DefaultConfig()
	config.Dest = dest
	config.LoaderFile = filepath.Join(dest, "GL", "__init__.pyx")

	conv, err := common.NewConverter(tables, config.HandlePrefix, config.UnhandledTypes)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		panic(err)
	}

	gen, err := generator.New(config, conv, log)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(generator.WrapperDir(dest, config.API), 0o755); err != nil {
		panic(err)
	}

	report, err := gen.Run()
	if err != nil {
		panic(err)
	}

	for _, f := range report.Files {
		content, err := os.ReadFile(f.Path)
		if err != nil {
			panic(err)
		}
		fmt.Printf("==> %s (%d emitted, %d skipped)\n%s\n", filepath.Base(f.Path), len(f.Emitted), len(f.Skipped), content)
	}
}
