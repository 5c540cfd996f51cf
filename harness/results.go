// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
	"gopkg.in/yaml.v3"
)

// predeclared are the builtins available to results files and assertions.
var predeclared = starlark.StringDict{
	"struct": starlark.NewBuiltin("struct", starlarkstruct.Make),
}

// LoadResults loads the globals of a simulation results file.
//
// Files ending in .star are executed as Starlark. Files ending in .yaml,
// .yml or .json are decoded as data: each top-level key is a global, and
// mappings become structs so that fields read as 'top.pc'.
func LoadResults(path string) (globals starlark.StringDict, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".star":
		globals, err = loadStarlark(path)
	case ".yaml", ".yml", ".json":
		globals, err = loadData(path)
	default:
		err = fmt.Errorf("%w: %v", ErrResultsFormat, path)
	}
	if err != nil {
		globals = nil
		return
	}

	globals.Freeze()

	return
}

// loadStarlark executes a Starlark results file.
func loadStarlark(path string) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{Name: "results"}
	opts := syntax.FileOptions{}

	globals, err = starlark.ExecFileOptions(&opts, thread, path, nil, predeclared)
	return
}

// loadData decodes a YAML or JSON results file.
func loadData(path string) (globals starlark.StringDict, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var top map[string]any
	err = yaml.Unmarshal(data, &top)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	globals = make(starlark.StringDict, len(top))
	for key, value := range top {
		globals[key], err = toStarlark(value)
		if err != nil {
			err = fmt.Errorf("%v: %v: %w", path, key, err)
			return
		}
	}

	return
}

// toStarlark converts a decoded YAML value.
func toStarlark(value any) (sv starlark.Value, err error) {
	switch v := value.(type) {
	case nil:
		sv = starlark.None
	case bool:
		sv = starlark.Bool(v)
	case int:
		sv = starlark.MakeInt(v)
	case int64:
		sv = starlark.MakeInt64(v)
	case uint64:
		sv = starlark.MakeUint64(v)
	case float64:
		sv = starlark.Float(v)
	case string:
		sv = starlark.String(v)
	case []any:
		elems := make([]starlark.Value, len(v))
		for n, elem := range v {
			elems[n], err = toStarlark(elem)
			if err != nil {
				return
			}
		}
		sv = starlark.NewList(elems)
	case map[string]any:
		fields := make(starlark.StringDict, len(v))
		for key, elem := range v {
			fields[key], err = toStarlark(elem)
			if err != nil {
				return
			}
		}
		sv = starlarkstruct.FromStringDict(starlarkstruct.Default, fields)
	case map[any]any:
		keys := make([]string, 0, len(v))
		index := make(map[string]any, len(v))
		for key, elem := range v {
			name := fmt.Sprint(key)
			keys = append(keys, name)
			index[name] = elem
		}
		sort.Strings(keys)
		dict := starlark.NewDict(len(v))
		for _, key := range keys {
			var elem starlark.Value
			elem, err = toStarlark(index[key])
			if err != nil {
				return
			}
			err = dict.SetKey(starlark.String(key), elem)
			if err != nil {
				return
			}
		}
		sv = dict
	default:
		err = fmt.Errorf("%w: %T", ErrResultsType, value)
	}

	return
}
