package schema

import (
	"reflect"
	"strings"
	"testing"

	"github.com/opennotebook/toolbridge/internal/catalog"
)

func TestCompile_TypeInference(t *testing.T) {
	cat := catalog.Catalog{Commands: []catalog.Command{
		{
			Name: "text-search",
			Help: "Perform a text search",
			Params: []catalog.Parameter{
				{Name: "query", Kind: catalog.KindPositional, Required: true},
				{Name: "results", Kind: catalog.KindOption, Type: catalog.TypeInteger},
				{Name: "min_score", Kind: catalog.KindOption, Type: catalog.TypeNumber},
				{Name: "source", Kind: catalog.KindFlag},
				{Name: "apply_transformations", Kind: catalog.KindOption, Repeated: true},
			},
		},
	}}

	specs, errs := Compile(cat)
	if len(errs) != 0 {
		t.Fatalf("expected no compile errors, got %v", errs)
	}

	spec, ok := specs["text-search"]
	if !ok {
		t.Fatal("expected text-search in compiled specs")
	}

	props := spec.Parameters.Properties
	cases := map[string]string{
		"query":                 TypeString,
		"results":               TypeInteger,
		"min_score":             TypeNumber,
		"source":                TypeBoolean,
		"apply_transformations": TypeArray,
	}
	if len(props) != len(cases) {
		t.Errorf("expected %d properties, got %d", len(cases), len(props))
	}
	for name, wantType := range cases {
		p, ok := props[name]
		if !ok {
			t.Errorf("expected property %q", name)
			continue
		}
		if p.Type != wantType {
			t.Errorf("property %q: expected type %s, got %s", name, wantType, p.Type)
		}
	}

	if props["apply_transformations"].Items == nil || props["apply_transformations"].Items.Type != TypeString {
		t.Error("expected array property to declare string items")
	}
}

func TestCompile_RequiredList(t *testing.T) {
	cat := catalog.Catalog{Commands: []catalog.Command{
		{
			Name: "create-note",
			Params: []catalog.Parameter{
				{Name: "notebook_id", Kind: catalog.KindPositional, Required: true},
				{Name: "title", Kind: catalog.KindPositional, Required: true},
				{Name: "type", Kind: catalog.KindOption},
			},
		},
	}}

	specs, errs := Compile(cat)
	if len(errs) != 0 {
		t.Fatalf("expected no compile errors, got %v", errs)
	}

	got := specs["create-note"].Parameters.Required
	want := []string{"notebook_id", "title"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected required %v, got %v", want, got)
	}
}

func TestCompile_RequiredNeverNil(t *testing.T) {
	cat := catalog.Catalog{Commands: []catalog.Command{
		{Name: "list-podcast-templates"},
	}}

	specs, _ := Compile(cat)
	if specs["list-podcast-templates"].Parameters.Required == nil {
		t.Error("expected required to be an empty slice, not nil")
	}
}

func TestCompile_EnumAndDefaults(t *testing.T) {
	cat := catalog.Catalog{Commands: []catalog.Command{
		{
			Name: "create-note",
			Params: []catalog.Parameter{
				{Name: "type", Kind: catalog.KindOption, Choices: []string{"human", "ai"}, Default: "human"},
				{Name: "embed", Kind: catalog.KindFlag},
			},
		},
	}}

	specs, _ := Compile(cat)
	props := specs["create-note"].Parameters.Properties

	if !reflect.DeepEqual(props["type"].Enum, []string{"human", "ai"}) {
		t.Errorf("expected enum [human ai], got %v", props["type"].Enum)
	}
	if props["type"].Default != "human" {
		t.Errorf("expected default human, got %v", props["type"].Default)
	}
	if props["embed"].Default != false {
		t.Errorf("expected boolean flag to default to false, got %v", props["embed"].Default)
	}
}

func TestCompile_DescriptionFallback(t *testing.T) {
	cat := catalog.Catalog{Commands: []catalog.Command{
		{Name: "embed-source"},
	}}

	specs, _ := Compile(cat)
	got := specs["embed-source"].Description
	if !strings.Contains(got, "embed-source") {
		t.Errorf("expected fallback description to name the command, got %q", got)
	}
}

func TestCompile_MalformedCommandIsIsolated(t *testing.T) {
	cat := catalog.Catalog{Commands: []catalog.Command{
		{Name: "get-note", Params: []catalog.Parameter{
			{Name: "note_id", Kind: catalog.KindPositional, Required: true},
		}},
		{Name: "broken", Params: []catalog.Parameter{
			{Name: "verbose", Kind: catalog.KindFlag, Type: catalog.TypeInteger},
		}},
	}}

	specs, errs := Compile(cat)
	if len(errs) != 1 {
		t.Fatalf("expected 1 compile error, got %d", len(errs))
	}
	if errs[0].Command != "broken" {
		t.Errorf("expected error for broken, got %q", errs[0].Command)
	}
	if _, ok := specs["broken"]; ok {
		t.Error("expected broken command to be excluded")
	}
	if _, ok := specs["get-note"]; !ok {
		t.Error("expected get-note to compile despite the broken sibling")
	}
}

func TestCompile_DuplicateCommandName(t *testing.T) {
	cat := catalog.Catalog{Commands: []catalog.Command{
		{Name: "get-note"},
		{Name: "get-note"},
	}}

	specs, errs := Compile(cat)
	if len(specs) != 1 {
		t.Errorf("expected 1 spec, got %d", len(specs))
	}
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "duplicate") {
		t.Errorf("expected duplicate command error, got %v", errs)
	}
}

func TestCompile_Pure(t *testing.T) {
	cat := catalog.Builtin()

	first, firstErrs := Compile(cat)
	second, secondErrs := Compile(cat)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output from repeated compilation")
	}
	if !reflect.DeepEqual(firstErrs, secondErrs) {
		t.Error("expected identical errors from repeated compilation")
	}
}

func TestCompile_Builtin(t *testing.T) {
	specs, errs := Compile(catalog.Builtin())
	if len(errs) != 0 {
		t.Fatalf("expected built-in catalog to compile cleanly, got %v", errs)
	}
	if len(specs) != len(catalog.Builtin().Commands) {
		t.Errorf("expected %d specs, got %d", len(catalog.Builtin().Commands), len(specs))
	}
}
