package common

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

type Converter struct {
	Tables *Tables

	Functions   map[string]RawFunction
	AliasMap    map[string]TypeAlias
	BaseTypeMap map[string]string

	HandlePrefix   string
	UnhandledTypes map[string]struct{}
}

// LoadTables reads the parser output. JSON documents are accepted as well
// since they are valid yaml.
func LoadTables(tablesFile string) (*Tables, error) {
	data, err := os.ReadFile(tablesFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", tablesFile, err)
	}

	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", tablesFile, err)
	}

	return &tables, nil
}

// NewConverter indexes the tables. Malformed entries (empty or duplicated
// names, negative pointer depths) are reported as errors. The unhandled
// marker is added to the unhandled set even when the list omits it.
func NewConverter(tables *Tables, handlePrefix string, unhandled []string) (*Converter, error) {
	c := &Converter{
		Tables:         tables,
		Functions:      make(map[string]RawFunction, len(tables.Functions)),
		AliasMap:       make(map[string]TypeAlias, len(tables.Types)),
		BaseTypeMap:    tables.BaseTypes,
		HandlePrefix:   handlePrefix,
		UnhandledTypes: make(map[string]struct{}, len(unhandled)),
	}
	if c.BaseTypeMap == nil {
		c.BaseTypeMap = map[string]string{}
	}

	// the marker is always unhandled, whatever the configured list says
	c.UnhandledTypes[Unhandled] = struct{}{}
	for _, u := range unhandled {
		c.UnhandledTypes[u] = struct{}{}
	}

	for i, t := range tables.Types {
		if t.Name == "" {
			return nil, fmt.Errorf("types[%d]: empty name", i)
		}
		if _, dup := c.AliasMap[t.Name]; dup {
			return nil, fmt.Errorf("types[%d]: duplicate type %s", i, t.Name)
		}
		c.AliasMap[t.Name] = t
	}

	for i, fn := range tables.Functions {
		if fn.Name == "" {
			return nil, fmt.Errorf("functions[%d]: empty name", i)
		}
		if _, dup := c.Functions[fn.Name]; dup {
			return nil, fmt.Errorf("functions[%d]: duplicate function %s", i, fn.Name)
		}
		if fn.Return.PointerDepth < 0 {
			return nil, fmt.Errorf("%s: negative return pointer depth", fn.Name)
		}
		for j, p := range fn.Params {
			if p.PointerDepth < 0 {
				return nil, fmt.Errorf("%s: param %d: negative pointer depth", fn.Name, j)
			}
		}
		c.Functions[fn.Name] = fn
	}

	return c, nil
}

// Normalize resolves every descriptor of fn through the alias table only.
// Pointer depth and constness are kept as declared.
func (c *Converter) Normalize(fn RawFunction) NormalizedFunction {
	nf := NormalizedFunction{
		Name:   fn.Name,
		Return: c.normalizeParam(fn.Return),
		Params: make([]NormalizedParam, len(fn.Params)),
	}
	for i, p := range fn.Params {
		nf.Params[i] = c.normalizeParam(p)
	}
	return nf
}

func (c *Converter) normalizeParam(p Param) NormalizedParam {
	np := NormalizedParam{Param: p, Native: p.Type}
	if p.Type == "" {
		np.Native = Unhandled
		return np
	}
	if alias, ok := c.AliasMap[p.Type]; ok {
		if alias.Struct {
			np.Native = Unhandled
		} else {
			np.Native = alias.Native
		}
	}
	return np
}

// ResolveBase maps a descriptor to its marshaling category. The second return
// is false when the name follows the handle prefix convention but is not in
// any table, or when it is a struct alias.
func (c *Converter) ResolveBase(p Param) (string, bool) {
	var base string
	if b, ok := c.BaseTypeMap[p.Type]; ok && b != "" {
		base = b
	} else if alias, ok := c.AliasMap[p.Type]; ok && alias.Native != "" {
		if alias.Struct {
			return "", false
		}
		base = alias.Native
	} else if p.Type == "" || (c.HandlePrefix != "" && strings.HasPrefix(p.Type, c.HandlePrefix)) {
		return "", false
	} else {
		base = p.Type
	}

	if base == "void" && p.PointerDepth > 0 {
		base = VoidP
	}
	return base, true
}

// IsUnhandled reports whether the declared or resolved type is in the unhandled set.
func (c *Converter) IsUnhandled(p NormalizedParam) bool {
	if _, ok := c.UnhandledTypes[p.Native]; ok {
		return true
	}
	_, ok := c.UnhandledTypes[p.Type]
	return ok
}

// SortedFunctionNames returns every function name in lexicographic order.
func (c *Converter) SortedFunctionNames() []string {
	names := make([]string, 0, len(c.Functions))
	for name := range c.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Features returns the feature list, or a single feature named version that
// holds every function and enum when the tables carry none.
func (c *Converter) Features(version string) []Feature {
	if len(c.Tables.Features) > 0 {
		return c.Tables.Features
	}

	all := Feature{Name: version}
	for _, fn := range c.Tables.Functions {
		all.Functions = append(all.Functions, fn.Name)
	}
	for _, e := range c.Tables.Enums {
		all.Enums = append(all.Enums, e.Name)
	}
	return []Feature{all}
}

// FeatureFunctions returns the functions required by f, keyed by name.
// Names missing from the function table are an error.
func (c *Converter) FeatureFunctions(f Feature) (map[string]RawFunction, error) {
	funcs := make(map[string]RawFunction, len(f.Functions))
	for _, name := range f.Functions {
		fn, ok := c.Functions[name]
		if !ok {
			return nil, fmt.Errorf("%s: unknown function %s", f.Name, name)
		}
		funcs[name] = fn
	}
	return funcs, nil
}

// FeatureEnums returns the enums required by f in table order.
func (c *Converter) FeatureEnums(f Feature) []EnumConstant {
	wanted := make(map[string]struct{}, len(f.Enums))
	for _, name := range f.Enums {
		wanted[name] = struct{}{}
	}

	var enums []EnumConstant
	for _, e := range c.Tables.Enums {
		if _, ok := wanted[e.Name]; ok {
			enums = append(enums, e)
		}
	}
	return enums
}
