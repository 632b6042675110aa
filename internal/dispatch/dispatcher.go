// Package dispatch validates and executes tool invocations against the
// underlying notebook CLI.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/opennotebook/toolbridge/internal/common"
	"github.com/opennotebook/toolbridge/internal/interfaces"
	"github.com/opennotebook/toolbridge/internal/models"
	"github.com/opennotebook/toolbridge/internal/registry"
)

// stderrTailLimit bounds how much captured stderr is kept in history records.
const stderrTailLimit = 2048

// Options configures a Dispatcher.
type Options struct {
	// Binary is the CLI executable; BaseArgs are prepended to every argv
	// (e.g. a script path when Binary is an interpreter).
	Binary   string
	BaseArgs []string
	// Timeout bounds one invocation end to end.
	Timeout time.Duration
	// MaxConcurrent bounds in-flight child processes; 0 means unbounded.
	MaxConcurrent int
	// Runner overrides the process runner (tests). Nil selects ExecRunner.
	Runner Runner
	// History records invocation outcomes, best-effort. May be nil.
	History interfaces.InvocationStore
}

// Result is the success payload of one invocation.
type Result struct {
	InvocationID string        `json:"invocation_id"`
	Tool         string        `json:"tool"`
	Payload      any           `json:"payload"`
	Duration     time.Duration `json:"-"`
}

// Dispatcher executes named tools against caller-supplied JSON arguments.
// Every invocation is independent; the dispatcher holds no cross-invocation
// state and never retries (invocations may have side effects).
type Dispatcher struct {
	registry *registry.Registry
	logger   *common.Logger
	binary   string
	baseArgs []string
	timeout  time.Duration
	runner   Runner
	history  interfaces.InvocationStore
	sem      chan struct{}
}

// New creates a dispatcher bound to a registry.
func New(reg *registry.Registry, logger *common.Logger, opts Options) *Dispatcher {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	runner := opts.Runner
	if runner == nil {
		runner = ExecRunner()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	var sem chan struct{}
	if opts.MaxConcurrent > 0 {
		sem = make(chan struct{}, opts.MaxConcurrent)
	}
	return &Dispatcher{
		registry: reg,
		logger:   logger,
		binary:   opts.Binary,
		baseArgs: append([]string(nil), opts.BaseArgs...),
		timeout:  timeout,
		runner:   runner,
		history:  opts.History,
		sem:      sem,
	}
}

// Execute resolves, validates, and runs one tool invocation.
// Validation always completes before a process is spawned.
func (d *Dispatcher) Execute(ctx context.Context, tool string, args map[string]any) (*Result, error) {
	entry, ok := d.registry.Get(tool)
	if !ok {
		return nil, notFoundError(tool)
	}

	if args == nil {
		args = map[string]any{}
	}
	values, verr := validateArgs(entry, args)
	if verr != nil {
		return nil, verr
	}

	if err := d.acquire(ctx); err != nil {
		return nil, err
	}
	defer d.release()

	// The API layer always requests structured output, as the original
	// wrapper did; --json precedes the command name because it belongs to
	// the CLI's root parser.
	argv := append(append([]string{}, d.baseArgs...), "--json")
	argv = append(argv, buildArgv(entry.Command, values)...)

	invocationID := uuid.New().String()
	start := time.Now()

	// The run is bounded by the timeout alone. Invocations have side
	// effects, so a caller disconnect must not kill the child mid-flight;
	// the process finishes naturally and the outcome is still recorded.
	runCtx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	result, runErr := d.runner(runCtx, d.binary, argv)
	duration := time.Since(start)

	payload, derr := d.resolveOutcome(runCtx, result, runErr)
	d.record(invocationID, tool, args, result, duration, derr)

	if derr != nil {
		d.logger.Warn().
			Str("invocation_id", invocationID).
			Str("tool", tool).
			Str("code", string(derr.Code)).
			Int("exit_code", result.ExitCode).
			Msg("tool invocation failed")
		return nil, derr
	}

	d.logger.Info().
		Str("invocation_id", invocationID).
		Str("tool", tool).
		Int("duration_ms", int(duration.Milliseconds())).
		Msg("tool invocation succeeded")

	return &Result{
		InvocationID: invocationID,
		Tool:         tool,
		Payload:      payload,
		Duration:     duration,
	}, nil
}

// resolveOutcome folds runner errors, timeouts, and process output into the
// error taxonomy.
func (d *Dispatcher) resolveOutcome(runCtx context.Context, result RunResult, runErr error) (any, *Error) {
	timedOut := errors.Is(runCtx.Err(), context.DeadlineExceeded) || errors.Is(runErr, context.DeadlineExceeded)
	if timedOut {
		return nil, &Error{
			Code:    CodeExecutionTimeout,
			Message: "command did not complete within the execution timeout",
			Detail:  string(result.Stderr),
		}
	}
	if runErr != nil {
		return nil, &Error{
			Code:    CodeExecutionError,
			Message: "failed to run command: " + runErr.Error(),
			Detail:  string(result.Stderr),
		}
	}
	return classifyOutcome(result)
}

// acquire takes an execution slot, queueing while the bound is reached.
func (d *Dispatcher) acquire(ctx context.Context) *Error {
	if d.sem == nil {
		return nil
	}
	select {
	case d.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return &Error{
			Code:    CodeExecutionTimeout,
			Message: "timed out waiting for an execution slot",
		}
	}
}

func (d *Dispatcher) release() {
	if d.sem != nil {
		<-d.sem
	}
}

// record writes the invocation outcome to history. Best-effort: failures are
// logged and never surface to the caller.
func (d *Dispatcher) record(id, tool string, args map[string]any, result RunResult, duration time.Duration, derr *Error) {
	if d.history == nil {
		return
	}

	argsJSON, _ := json.Marshal(args)
	inv := models.Invocation{
		ID:         id,
		Tool:       tool,
		Args:       string(argsJSON),
		Status:     models.InvocationSucceeded,
		ExitCode:   result.ExitCode,
		DurationMs: duration.Milliseconds(),
		Stderr:     tail(string(result.Stderr), stderrTailLimit),
		Created:    time.Now().UTC(),
	}
	if derr != nil {
		inv.Status = models.InvocationFailed
		inv.Code = string(derr.Code)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.history.Record(ctx, inv); err != nil {
		d.logger.Warn().
			Str("invocation_id", id).
			Str("error", err.Error()).
			Msg("failed to record invocation history")
	}
}

func tail(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[len(s)-limit:]
}
