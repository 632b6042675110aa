package dispatch

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// RunResult captures the observable outcome of one child process.
type RunResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner invokes a named executable with an argument vector and reports its
// exit status and captured output. A non-zero exit is not an error here; the
// returned error covers spawn failures only. Injectable so tests can run
// without real processes.
type Runner func(ctx context.Context, name string, args []string) (RunResult, error)

// ExecRunner returns the production Runner backed by os/exec. The context
// bounds the child's lifetime: on expiry the process is killed and any
// lingering pipe readers are released after waitDelay.
func ExecRunner() Runner {
	const waitDelay = 5 * time.Second

	return func(ctx context.Context, name string, args []string) (RunResult, error) {
		var stdout, stderr bytes.Buffer

		cmd := exec.CommandContext(ctx, name, args...)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		cmd.WaitDelay = waitDelay

		err := cmd.Run()
		result := RunResult{
			Stdout: stdout.Bytes(),
			Stderr: stderr.Bytes(),
		}

		var exitErr *exec.ExitError
		switch {
		case err == nil:
			result.ExitCode = 0
		case errors.As(err, &exitErr):
			result.ExitCode = exitErr.ExitCode()
		default:
			// Spawn failure: binary missing, permission denied, or the
			// context expired before the process started.
			return result, err
		}

		return result, nil
	}
}
