// Package deps turns external package metadata into dependency interface
// indexes: the docs.json files Elm packages publish, and a hand-authored
// YAML format for fixtures and unpackaged interfaces. A sqlite-backed
// cache (cache.go) keeps parsed interfaces across runs.
package deps

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/funvibe/elmscope/internal/elm"
	"github.com/funvibe/elmscope/internal/exports"
)

// docsModule mirrors one entry of a package's docs.json: the documented
// module with its exposed values, operators, unions and aliases. A union's
// tag list is present exactly when the constructors are exposed, so the
// tags double as the exposed-constructor set.
type docsModule struct {
	Name    string      `json:"name"`
	Unions  []docsUnion `json:"unions"`
	Aliases []docsNamed `json:"aliases"`
	Values  []docsNamed `json:"values"`
	Binops  []docsNamed `json:"binops"`
}

type docsNamed struct {
	Name string `json:"name"`
}

type docsUnion struct {
	Name  string    `json:"name"`
	Cases []docsTag `json:"cases"`
}

// docsTag is one union case, serialized in docs.json as a two-element
// array of tag name and argument types. Only the name matters here.
type docsTag struct {
	Name string
}

func (t *docsTag) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("union case without a tag name")
	}
	return json.Unmarshal(raw[0], &t.Name)
}

// LoadDocs parses a package's docs.json into interface index entries.
func LoadDocs(r io.Reader) (exports.Index, error) {
	var modules []docsModule
	if err := json.NewDecoder(r).Decode(&modules); err != nil {
		return nil, fmt.Errorf("parsing docs.json: %w", err)
	}
	idx := exports.NewIndex()
	for _, mod := range modules {
		table := exports.NewTable()
		for _, v := range mod.Values {
			table.AddValue(v.Name)
		}
		for _, b := range mod.Binops {
			table.AddValue(b.Name)
		}
		for _, u := range mod.Unions {
			ctors := make([]string, 0, len(u.Cases))
			for _, c := range u.Cases {
				ctors = append(ctors, c.Name)
			}
			table.AddType(u.Name, ctors)
		}
		for _, a := range mod.Aliases {
			table.AddType(a.Name, nil)
		}
		idx.Add(elm.Name(mod.Name), table)
	}
	return idx, nil
}
