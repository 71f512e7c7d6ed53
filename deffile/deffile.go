// Package deffile loads option definitions from YAML, TOML and JSON
// (with comments) files. Options keep the order they are written in,
// which is the order usage text and defaults follow.
//
// Every format describes a mapping from option name to a record:
//
//	port:
//	  alias: p
//	  type: number
//	  default: 8080
//	  description: Listen port
//
// Recognised record fields are alias, type, multiple, description,
// require (or required), default, valid and parsePrimitives.
package deffile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dzonerzy/go-bossy/bossy"
)

// Format names a definition file syntax.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported definition file extension %q", filepath.Ext(path))
	}
}

// Load reads and parses the definition file at path.
func Load(path string) (bossy.Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes data in the given format and validates the result. A
// definition the parser would refuse comes back as a wrapped
// *bossy.DefinitionError.
func Parse(data []byte, format Format) (bossy.Definition, error) {
	var (
		root *bossy.Object
		err  error
	)
	switch format {
	case FormatJSON:
		root, err = decodeJSON(data)
	case FormatYAML:
		root, err = decodeYAML(data)
	case FormatTOML:
		root, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s definition: %w", format, err)
	}

	def, err := build(root)
	if err != nil {
		return nil, err
	}
	if err := bossy.Validate(def); err != nil {
		return nil, fmt.Errorf("validating definition: %w", err)
	}
	return def, nil
}

// build turns the decoded name-to-record mapping into a Definition.
func build(root *bossy.Object) (bossy.Definition, error) {
	def := make(bossy.Definition, 0, root.Len())
	for _, name := range root.Keys() {
		v, _ := root.Get(name)
		record, ok := v.AsObject()
		if v.IsNull() {
			record, ok = bossy.NewObject(), true
		}
		if !ok {
			return nil, fmt.Errorf("option %q: expected a record, got %s", name, v.Kind())
		}
		opt, err := buildOption(name, record)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", name, err)
		}
		def = append(def, opt)
	}
	return def, nil
}

func buildOption(name string, record *bossy.Object) (bossy.Option, error) {
	opt := bossy.Option{Name: name}
	for _, field := range record.Keys() {
		v, _ := record.Get(field)
		var err error
		switch field {
		case "alias":
			opt.Alias, err = stringList(v)
		case "type":
			var typ string
			if typ, err = str(v); err == nil {
				opt.Type, err = bossy.ParseType(typ)
			}
		case "multiple":
			opt.Multiple, err = boolean(v)
		case "description":
			opt.Description, err = str(v)
		case "require", "required":
			opt.Required, err = boolean(v)
		case "default":
			opt.Default = v
		case "valid":
			opt.Valid = valueList(v)
		case "parsePrimitives":
			opt.ParsePrimitives, err = primitives(v)
		default:
			return opt, fmt.Errorf("unknown field %q", field)
		}
		if err != nil {
			return opt, fmt.Errorf("field %q: %w", field, err)
		}
	}
	return opt, nil
}

func str(v bossy.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", fmt.Errorf("expected a string, got %s", v.Kind())
	}
	return s, nil
}

func boolean(v bossy.Value) (bool, error) {
	b, ok := v.AsBool()
	if !ok {
		return false, fmt.Errorf("expected a boolean, got %s", v.Kind())
	}
	return b, nil
}

func stringList(v bossy.Value) ([]string, error) {
	if s, ok := v.AsString(); ok {
		return []string{s}, nil
	}
	items, ok := v.AsList()
	if !ok {
		return nil, fmt.Errorf("expected a string or a list of strings, got %s", v.Kind())
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, err := str(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

func valueList(v bossy.Value) []bossy.Value {
	if items, ok := v.AsList(); ok {
		return items
	}
	return []bossy.Value{v}
}

func primitives(v bossy.Value) (bossy.Primitives, error) {
	if b, ok := v.AsBool(); ok {
		if b {
			return bossy.PrimitivesOn, nil
		}
		return bossy.PrimitivesOff, nil
	}
	if s, ok := v.AsString(); ok && s == "strict" {
		return bossy.PrimitivesStrict, nil
	}
	return 0, fmt.Errorf(`expected true, false or "strict", got %s`, v)
}
