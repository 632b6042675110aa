package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opennotebook/toolbridge/internal/common"
	"github.com/opennotebook/toolbridge/internal/dispatch"
)

var errTest = errors.New("wiring failure")

// stubExecutor returns a canned result or error and records what it was asked.
type stubExecutor struct {
	result *dispatch.Result
	err    error

	gotTool string
	gotArgs map[string]any
}

func (s *stubExecutor) Execute(ctx context.Context, tool string, args map[string]any) (*dispatch.Result, error) {
	s.gotTool = tool
	s.gotArgs = args
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestExecuteHandler_Success(t *testing.T) {
	exec := &stubExecutor{result: &dispatch.Result{
		InvocationID: "inv-1",
		Tool:         "get-notebook",
		Payload:      map[string]any{"id": "notebook:1"},
	}}
	handler := NewExecuteHandler(common.NewSilentLogger(), exec)

	req := httptest.NewRequest("POST", "/api/execute/get-notebook",
		strings.NewReader(`{"args": {"notebook_id": "notebook:1"}}`))
	req.SetPathValue("name", "get-notebook")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if exec.gotTool != "get-notebook" {
		t.Errorf("expected tool get-notebook, got %q", exec.gotTool)
	}
	if exec.gotArgs["notebook_id"] != "notebook:1" {
		t.Errorf("expected notebook_id arg, got %v", exec.gotArgs)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body["status"] != "success" {
		t.Errorf("expected status success, got %v", body["status"])
	}
	if body["invocation_id"] != "inv-1" {
		t.Errorf("expected invocation_id inv-1, got %v", body["invocation_id"])
	}
	result, ok := body["result"].(map[string]any)
	if !ok || result["id"] != "notebook:1" {
		t.Errorf("expected result payload, got %v", body["result"])
	}
}

func TestExecuteHandler_EmptyBodyMeansNoArgs(t *testing.T) {
	exec := &stubExecutor{result: &dispatch.Result{InvocationID: "inv-2", Tool: "list-notebooks"}}
	handler := NewExecuteHandler(common.NewSilentLogger(), exec)

	req := httptest.NewRequest("POST", "/api/execute/list-notebooks", nil)
	req.SetPathValue("name", "list-notebooks")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if exec.gotTool != "list-notebooks" {
		t.Errorf("expected tool list-notebooks, got %q", exec.gotTool)
	}
}

func TestExecuteHandler_MalformedBody(t *testing.T) {
	exec := &stubExecutor{}
	handler := NewExecuteHandler(common.NewSilentLogger(), exec)

	req := httptest.NewRequest("POST", "/api/execute/get-notebook", strings.NewReader(`{"args":`))
	req.SetPathValue("name", "get-notebook")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if exec.gotTool != "" {
		t.Error("expected executor not to be called for malformed body")
	}
}

func TestExecuteHandler_DispatchErrorsMapped(t *testing.T) {
	cases := []struct {
		code       dispatch.Code
		wantStatus int
	}{
		{dispatch.CodeToolNotFound, http.StatusNotFound},
		{dispatch.CodeInvalidArguments, http.StatusBadRequest},
		{dispatch.CodeResourceNotFound, http.StatusNotFound},
		{dispatch.CodeExecutionError, http.StatusBadGateway},
		{dispatch.CodeExecutionTimeout, http.StatusGatewayTimeout},
	}

	for _, c := range cases {
		exec := &stubExecutor{err: &dispatch.Error{Code: c.code, Message: "boom"}}
		handler := NewExecuteHandler(common.NewSilentLogger(), exec)

		req := httptest.NewRequest("POST", "/api/execute/get-notebook", strings.NewReader(`{}`))
		req.SetPathValue("name", "get-notebook")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != c.wantStatus {
			t.Errorf("%s: expected status %d, got %d", c.code, c.wantStatus, w.Code)
		}
	}
}

func TestCLIHandler_RoutesByBodyCommand(t *testing.T) {
	exec := &stubExecutor{result: &dispatch.Result{InvocationID: "inv-3", Tool: "get-note"}}
	handler := NewCLIHandler(common.NewSilentLogger(), NewExecuteHandler(common.NewSilentLogger(), exec))

	req := httptest.NewRequest("POST", "/api/cli",
		strings.NewReader(`{"command": "get-note", "args": {"note_id": "note:1"}}`))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if exec.gotTool != "get-note" {
		t.Errorf("expected tool get-note, got %q", exec.gotTool)
	}
	if exec.gotArgs["note_id"] != "note:1" {
		t.Errorf("expected note_id arg, got %v", exec.gotArgs)
	}
}

func TestCLIHandler_MissingCommand(t *testing.T) {
	exec := &stubExecutor{}
	handler := NewCLIHandler(common.NewSilentLogger(), NewExecuteHandler(common.NewSilentLogger(), exec))

	req := httptest.NewRequest("POST", "/api/cli", strings.NewReader(`{"args": {}}`))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if exec.gotTool != "" {
		t.Error("expected executor not to be called without a command")
	}
}
