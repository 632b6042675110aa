package dispatch

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The notebook CLI reports most failures in text rather than exit codes: a
// missing resource prints "<thing> not found: <id>" and exits zero, and
// handled exceptions print an {"error": ...} JSON object. Classification
// therefore looks at output text as well as the exit status.
var (
	notFoundPattern = regexp.MustCompile(`(?i)\bnot found\b`)
	invalidPattern  = regexp.MustCompile(`(?i)(\binvalid\b|\brequired\b|\bmust be\b|usage:|unrecognized arguments)`)
)

// classifyOutcome turns a finished process into a success payload or a typed
// error. Zero-exit structured output is the success path; everything else is
// classified as resource-not-found, invalid-input, or a generic execution
// error carrying the captured output.
func classifyOutcome(result RunResult) (any, *Error) {
	stdout := strings.TrimSpace(string(result.Stdout))
	stderr := strings.TrimSpace(string(result.Stderr))

	if result.ExitCode != 0 {
		text := stderr
		if text == "" {
			text = stdout
		}
		return nil, &Error{
			Code:    classifyText(text),
			Message: firstLine(text, "command exited with a failure status"),
			Detail:  text,
		}
	}

	if stdout == "" {
		return nil, nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(stdout), &parsed); err == nil {
		if obj, ok := parsed.(map[string]any); ok {
			if msg, ok := obj["error"].(string); ok && msg != "" {
				return nil, &Error{
					Code:    classifyText(msg),
					Message: msg,
					Detail:  stdout,
				}
			}
		}
		return parsed, nil
	}

	// Unstructured output. The CLI's "not found" notices arrive this way;
	// anything else is returned verbatim rather than dropped.
	if notFoundPattern.MatchString(stdout) {
		return nil, &Error{
			Code:    CodeResourceNotFound,
			Message: firstLine(stdout, "resource not found"),
			Detail:  stdout,
		}
	}
	return stdout, nil
}

// classifyText maps recognizable command error text onto the taxonomy.
func classifyText(text string) Code {
	switch {
	case notFoundPattern.MatchString(text):
		return CodeResourceNotFound
	case invalidPattern.MatchString(text):
		return CodeInvalidArguments
	default:
		return CodeExecutionError
	}
}

func firstLine(text, fallback string) string {
	if text == "" {
		return fallback
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return text
}
