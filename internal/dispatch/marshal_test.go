package dispatch

import (
	"reflect"
	"testing"

	"github.com/opennotebook/toolbridge/internal/catalog"
)

func TestBuildArgv_PositionalsInDeclaredOrder(t *testing.T) {
	cmd := catalog.Command{
		Name: "create-note",
		Params: []catalog.Parameter{
			{Name: "notebook_id", Kind: catalog.KindPositional, Required: true},
			{Name: "title", Kind: catalog.KindPositional, Required: true},
			{Name: "content", Kind: catalog.KindPositional, Required: true},
		},
	}

	argv := buildArgv(cmd, map[string]any{
		"content":     "note body",
		"notebook_id": "nb1",
		"title":       "My Note",
	})

	want := []string{"create-note", "nb1", "My Note", "note body"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("expected %v, got %v", want, argv)
	}
}

func TestBuildArgv_FlagEmittedOnlyWhenTrue(t *testing.T) {
	cmd := catalog.Command{
		Name: "add-text-source",
		Params: []catalog.Parameter{
			{Name: "notebook_id", Kind: catalog.KindPositional, Required: true},
			{Name: "embed", Kind: catalog.KindFlag},
			{Name: "transform", Kind: catalog.KindFlag},
		},
	}

	argv := buildArgv(cmd, map[string]any{
		"notebook_id": "nb1",
		"embed":       true,
		"transform":   false,
	})

	want := []string{"add-text-source", "nb1", "--embed"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("expected %v, got %v", want, argv)
	}
}

func TestBuildArgv_OptionsUseEqualsForm(t *testing.T) {
	cmd := catalog.Command{
		Name: "text-search",
		Params: []catalog.Parameter{
			{Name: "query", Kind: catalog.KindPositional, Required: true},
			{Name: "results", Kind: catalog.KindOption, Type: catalog.TypeInteger},
			{Name: "min_score", Kind: catalog.KindOption, Type: catalog.TypeNumber},
			{Name: "order_by", Kind: catalog.KindOption},
		},
	}

	argv := buildArgv(cmd, map[string]any{
		"query":     "vectors",
		"results":   int64(5),
		"min_score": 0.25,
		"order_by":  "created desc",
	})

	want := []string{"text-search", "vectors", "--results=5", "--min-score=0.25", "--order-by=created desc"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("expected %v, got %v", want, argv)
	}
}

func TestBuildArgv_RepeatedOptionEmitsValueList(t *testing.T) {
	cmd := catalog.Command{
		Name: "add-url-source",
		Params: []catalog.Parameter{
			{Name: "notebook_id", Kind: catalog.KindPositional, Required: true},
			{Name: "url", Kind: catalog.KindPositional, Required: true},
			{Name: "apply_transformations", Kind: catalog.KindOption, Repeated: true},
		},
	}

	argv := buildArgv(cmd, map[string]any{
		"notebook_id":           "nb1",
		"url":                   "https://example.org",
		"apply_transformations": []string{"summary", "key-points"},
	})

	want := []string{"add-url-source", "nb1", "https://example.org", "--apply-transformations", "summary", "key-points"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("expected %v, got %v", want, argv)
	}
}

func TestBuildArgv_EmptyRepeatedOptionOmitted(t *testing.T) {
	cmd := catalog.Command{
		Name: "add-url-source",
		Params: []catalog.Parameter{
			{Name: "url", Kind: catalog.KindPositional, Required: true},
			{Name: "apply_transformations", Kind: catalog.KindOption, Repeated: true},
		},
	}

	argv := buildArgv(cmd, map[string]any{
		"url":                   "https://example.org",
		"apply_transformations": []string{},
	})

	want := []string{"add-url-source", "https://example.org"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("expected %v, got %v", want, argv)
	}
}

func TestBuildArgv_NegativeNumericPositional(t *testing.T) {
	cmd := catalog.Command{
		Name: "adjust-rank",
		Params: []catalog.Parameter{
			{Name: "offset", Kind: catalog.KindPositional, Required: true, Type: catalog.TypeInteger},
		},
	}

	argv := buildArgv(cmd, map[string]any{"offset": int64(-5)})

	want := []string{"adjust-rank", "-5"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("expected %v, got %v", want, argv)
	}
}

func TestBuildArgv_OmittedOptionalPositional(t *testing.T) {
	cmd := catalog.Command{
		Name: "apply-transformation",
		Params: []catalog.Parameter{
			{Name: "source_id", Kind: catalog.KindPositional, Required: true},
			{Name: "transformation_id", Kind: catalog.KindPositional},
			{Name: "transform", Kind: catalog.KindFlag},
		},
	}

	argv := buildArgv(cmd, map[string]any{
		"source_id": "src1",
		"transform": true,
	})

	want := []string{"apply-transformation", "src1", "--transform"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("expected %v, got %v", want, argv)
	}
}
