package deps

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/elmscope/internal/elm"
	"github.com/funvibe/elmscope/internal/exports"
)

// interfaceFile is the hand-authored YAML interface format:
//
//	modules:
//	  - name: Html.Events
//	    values: [onClick, onInput]
//	    types:
//	      - name: Visibility
//	        ctors: [Visible, Hidden]
//
// A type listing ctors exposes them; the loader also enters them in the
// value namespace, same as docs.json union tags.
type interfaceFile struct {
	Modules []interfaceModule `yaml:"modules"`
}

type interfaceModule struct {
	Name              string `yaml:"name"`
	exports.TableData `yaml:",inline"`
}

// LoadInterfaces parses a YAML interface file into index entries.
func LoadInterfaces(r io.Reader) (exports.Index, error) {
	var file interfaceFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing interface file: %w", err)
	}
	idx := exports.NewIndex()
	for _, mod := range file.Modules {
		if mod.Name == "" {
			return nil, fmt.Errorf("interface module without a name")
		}
		idx.Add(elm.Name(mod.Name), exports.FromData(mod.TableData))
	}
	return idx, nil
}

// LoadDir walks a directory of interface files (*.json docs, *.yaml or
// *.yml interface files) and merges them into one dependency index.
// Other files are ignored.
func LoadDir(dir string) (exports.Index, error) {
	idx := exports.NewIndex()
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		var (
			loaded exports.Index
			lerr   error
		)
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			loaded, lerr = loadFile(path, LoadDocs)
		case ".yaml", ".yml":
			loaded, lerr = loadFile(path, LoadInterfaces)
		default:
			return nil
		}
		if lerr != nil {
			return fmt.Errorf("%s: %w", path, lerr)
		}
		idx.Merge(loaded)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

func loadFile(path string, load func(io.Reader) (exports.Index, error)) (exports.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return load(f)
}
