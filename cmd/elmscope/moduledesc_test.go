package main

import (
	"reflect"
	"testing"

	"github.com/funvibe/elmscope/internal/elm"
)

func TestParseExposedItem(t *testing.T) {
	cases := []struct {
		in   string
		want elm.ExposedItem
	}{
		{"button", elm.Value("button")},
		{"Html", elm.Type("Html")},
		{"Maybe(..)", elm.OpenType("Maybe")},
		{"Msg(Inc, Dec)", elm.ClosedType("Msg", "Inc", "Dec")},
		{"(::)", elm.Value("::")},
		{" onClick ", elm.Value("onClick")},
	}
	for _, tc := range cases {
		got, err := parseExposedItem(tc.in)
		if err != nil {
			t.Errorf("parseExposedItem(%q): %v", tc.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseExposedItem(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseExposedItemErrors(t *testing.T) {
	for _, in := range []string{"", "Msg(Inc"} {
		if _, err := parseExposedItem(in); err == nil {
			t.Errorf("parseExposedItem(%q): expected error", in)
		}
	}
}

func TestParseExposing(t *testing.T) {
	if got, err := parseExposing(nil); err != nil || got != nil {
		t.Errorf("absent clause = (%v, %v), want (nil, nil)", got, err)
	}

	got, err := parseExposing([]string{"..."})
	if err != nil || got == nil || !got.All {
		t.Fatalf("wildcard clause = (%+v, %v)", got, err)
	}

	got, err = parseExposing([]string{"baz", "Status(..)"})
	if err != nil {
		t.Fatal(err)
	}
	if got.All || len(got.Items) != 2 || !got.Items[1].OpenCtors {
		t.Errorf("explicit clause = %+v", got)
	}
}

func TestModuleDescConversion(t *testing.T) {
	desc := &ModuleDesc{
		Module:   "Page.Main",
		Exposing: []string{"main"},
		Imports: []ImportDesc{
			{Module: "Bar", Alias: "Baz", Exposing: []string{"baz"}},
			{Module: "Html", Exposing: []string{"..."}},
		},
		Declarations: DeclsDesc{
			Values: []string{"main"},
			Unions: []UnionDesc{{Name: "Msg", Ctors: []string{"Tick"}}},
		},
	}

	header, err := desc.header()
	if err != nil {
		t.Fatal(err)
	}
	if header.Name.String() != "Page.Main" || header.Exposing.All {
		t.Errorf("header = %+v", header)
	}

	imports, err := desc.imports()
	if err != nil {
		t.Fatal(err)
	}
	if len(imports) != 2 || imports[0].Alias != "Baz" || !imports[1].Exposing.All {
		t.Errorf("imports = %+v", imports)
	}

	decls := desc.declarations()
	if len(decls) != 2 {
		t.Fatalf("declarations = %+v", decls)
	}
	if union, ok := decls[1].(elm.UnionDecl); !ok || union.Ctors[0] != "Tick" {
		t.Errorf("union declaration = %+v", decls[1])
	}
}
