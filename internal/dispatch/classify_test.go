package dispatch

import (
	"reflect"
	"testing"
)

func TestClassifyOutcome_JSONSuccess(t *testing.T) {
	payload, err := classifyOutcome(RunResult{
		Stdout: []byte(`{"id": "nb1", "name": "Research"}`),
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	obj, ok := payload.(map[string]any)
	if !ok || obj["name"] != "Research" {
		t.Errorf("expected parsed object payload, got %v", payload)
	}
}

func TestClassifyOutcome_JSONArraySuccess(t *testing.T) {
	payload, err := classifyOutcome(RunResult{
		Stdout: []byte(`[{"id": "nb1"}, {"id": "nb2"}]`),
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	arr, ok := payload.([]any)
	if !ok || len(arr) != 2 {
		t.Errorf("expected 2-element array payload, got %v", payload)
	}
}

func TestClassifyOutcome_EmptyOutput(t *testing.T) {
	payload, err := classifyOutcome(RunResult{})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if payload != nil {
		t.Errorf("expected nil payload, got %v", payload)
	}
}

// The CLI reports handled failures as {"error": ...} JSON with a zero exit.
func TestClassifyOutcome_JSONErrorObject(t *testing.T) {
	_, err := classifyOutcome(RunResult{
		Stdout: []byte(`{"error": "Notebook not found: notebook:missing"}`),
	})
	if err == nil {
		t.Fatal("expected classified error")
	}
	if err.Code != CodeResourceNotFound {
		t.Errorf("expected resource_not_found, got %s", err.Code)
	}
	if err.Message != "Notebook not found: notebook:missing" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestClassifyOutcome_JSONErrorInvalid(t *testing.T) {
	_, err := classifyOutcome(RunResult{
		Stdout: []byte(`{"error": "Either transformation_id or --transform is required"}`),
	})
	if err == nil || err.Code != CodeInvalidArguments {
		t.Fatalf("expected invalid_arguments, got %v", err)
	}
}

// Plain-text "not found" notices also arrive on stdout with a zero exit.
func TestClassifyOutcome_TextNotFound(t *testing.T) {
	_, err := classifyOutcome(RunResult{
		Stdout: []byte("Source not found: source:abc123"),
	})
	if err == nil || err.Code != CodeResourceNotFound {
		t.Fatalf("expected resource_not_found, got %v", err)
	}
}

func TestClassifyOutcome_PlainTextPassedThrough(t *testing.T) {
	payload, err := classifyOutcome(RunResult{
		Stdout: []byte("Podcast generation started"),
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !reflect.DeepEqual(payload, "Podcast generation started") {
		t.Errorf("expected raw string payload, got %v", payload)
	}
}

func TestClassifyOutcome_NonZeroExitUsesStderr(t *testing.T) {
	_, err := classifyOutcome(RunResult{
		Stderr:   []byte("usage: open-notebook-cli [-h]\nerror: unrecognized arguments: --bogus"),
		ExitCode: 2,
	})
	if err == nil {
		t.Fatal("expected classified error")
	}
	if err.Code != CodeInvalidArguments {
		t.Errorf("expected invalid_arguments, got %s", err.Code)
	}
	if err.Message != "usage: open-notebook-cli [-h]" {
		t.Errorf("expected first stderr line as message, got %q", err.Message)
	}
	if err.Detail == "" {
		t.Error("expected detail to carry the captured output")
	}
}

func TestClassifyOutcome_NonZeroExitGeneric(t *testing.T) {
	_, err := classifyOutcome(RunResult{
		Stderr:   []byte("Traceback (most recent call last):"),
		ExitCode: 1,
	})
	if err == nil || err.Code != CodeExecutionError {
		t.Fatalf("expected execution_error, got %v", err)
	}
}

func TestClassifyOutcome_NonZeroExitEmptyStderrFallsBackToStdout(t *testing.T) {
	_, err := classifyOutcome(RunResult{
		Stdout:   []byte("connection refused"),
		ExitCode: 1,
	})
	if err == nil || err.Code != CodeExecutionError {
		t.Fatalf("expected execution_error, got %v", err)
	}
	if err.Message != "connection refused" {
		t.Errorf("expected stdout fallback message, got %q", err.Message)
	}
}

func TestClassifyText(t *testing.T) {
	cases := []struct {
		text string
		want Code
	}{
		{"Notebook not found: notebook:x", CodeResourceNotFound},
		{"NOT FOUND", CodeResourceNotFound},
		{"invalid note type", CodeInvalidArguments},
		{"name is required", CodeInvalidArguments},
		{"score must be between 0 and 1", CodeInvalidArguments},
		{"something exploded", CodeExecutionError},
	}
	for _, c := range cases {
		if got := classifyText(c.text); got != c.want {
			t.Errorf("classifyText(%q): expected %s, got %s", c.text, c.want, got)
		}
	}
}
