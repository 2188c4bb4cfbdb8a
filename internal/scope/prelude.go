package scope

import "github.com/funvibe/elmscope/internal/elm"

// prelude is Elm's implicit default import list, present in every module
// with the lowest priority: an explicit import can take a name over the
// prelude by coming earlier in the scan order, and local scope beats both.
// Basics is the one wildcard entry; its actual name set comes from the
// elm/core interface in the dependency index, like any other wildcard.
//
// The entries mirror the compiler's hard-coded defaults:
//
//	import Basics exposing (..)
//	import List exposing (List, (::))
//	import Maybe exposing (Maybe(..))
//	import Result exposing (Result(..))
//	import String exposing (String)
//	import Char exposing (Char)
//	import Tuple
//	import Debug
//	import Platform exposing (Program)
//	import Platform.Cmd as Cmd exposing (Cmd)
//	import Platform.Sub as Sub exposing (Sub)
var prelude = []elm.Import{
	{Module: elm.Name("Basics"), Exposing: exposingOf(elm.ExposeAll())},
	{Module: elm.Name("List"), Exposing: exposingOf(elm.Expose(elm.Type("List"), elm.Value("::")))},
	{Module: elm.Name("Maybe"), Exposing: exposingOf(elm.Expose(elm.OpenType("Maybe")))},
	{Module: elm.Name("Result"), Exposing: exposingOf(elm.Expose(elm.OpenType("Result")))},
	{Module: elm.Name("String"), Exposing: exposingOf(elm.Expose(elm.Type("String")))},
	{Module: elm.Name("Char"), Exposing: exposingOf(elm.Expose(elm.Type("Char")))},
	{Module: elm.Name("Tuple")},
	{Module: elm.Name("Debug")},
	{Module: elm.Name("Platform"), Exposing: exposingOf(elm.Expose(elm.Type("Program")))},
	{Module: elm.Name("Platform.Cmd"), Alias: "Cmd", Exposing: exposingOf(elm.Expose(elm.Type("Cmd")))},
	{Module: elm.Name("Platform.Sub"), Alias: "Sub", Exposing: exposingOf(elm.Expose(elm.Type("Sub")))},
}

func exposingOf(e elm.Exposing) *elm.Exposing {
	return &e
}
