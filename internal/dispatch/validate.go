package dispatch

import (
	"math"
	"strings"

	"github.com/opennotebook/toolbridge/internal/catalog"
	"github.com/opennotebook/toolbridge/internal/registry"
)

// validateArgs checks caller-supplied arguments against the tool's compiled
// schema and returns canonical typed values ready for marshaling. Unknown
// keys, missing required parameters, type mismatches, enum violations, and
// values that would read as flag tokens are all rejected here — before any
// process is spawned.
func validateArgs(entry registry.Entry, args map[string]any) (map[string]any, *Error) {
	params := make(map[string]catalog.Parameter, len(entry.Command.Params))
	for _, p := range entry.Command.Params {
		params[p.Name] = p
	}

	for name := range args {
		if _, ok := params[name]; !ok {
			return nil, argumentError(name, "unknown argument %q", name)
		}
	}

	for _, name := range entry.Spec.Parameters.Required {
		if _, ok := args[name]; !ok {
			return nil, argumentError(name, "missing required argument %q", name)
		}
	}

	values := make(map[string]any, len(args))
	for name, raw := range args {
		p := params[name]
		spec := entry.Spec.Parameters.Properties[name]
		v, err := coerceValue(p, spec.Type, raw)
		if err != nil {
			return nil, err
		}
		values[name] = v
	}

	return values, nil
}

// coerceValue validates one JSON value against its declared schema type.
func coerceValue(p catalog.Parameter, schemaType string, raw any) (any, *Error) {
	switch schemaType {
	case "boolean":
		b, ok := raw.(bool)
		if !ok {
			return nil, argumentError(p.Name, "argument %q must be a boolean", p.Name)
		}
		return b, nil

	case "integer":
		f, ok := raw.(float64)
		if !ok || f != math.Trunc(f) {
			return nil, argumentError(p.Name, "argument %q must be an integer", p.Name)
		}
		return int64(f), nil

	case "number":
		f, ok := raw.(float64)
		if !ok {
			return nil, argumentError(p.Name, "argument %q must be a number", p.Name)
		}
		return f, nil

	case "array":
		items, ok := raw.([]any)
		if !ok {
			return nil, argumentError(p.Name, "argument %q must be an array of strings", p.Name)
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, argumentError(p.Name, "argument %q must contain only strings", p.Name)
			}
			if strings.HasPrefix(s, "-") {
				return nil, argumentError(p.Name, "argument %q value %q would be read as a flag token", p.Name, s)
			}
			out = append(out, s)
		}
		return out, nil

	default: // string, including enums
		s, ok := raw.(string)
		if !ok {
			return nil, argumentError(p.Name, "argument %q must be a string", p.Name)
		}
		if len(p.Choices) > 0 && !contains(p.Choices, s) {
			return nil, argumentError(p.Name, "argument %q must be one of %s", p.Name, strings.Join(p.Choices, ", "))
		}
		// Positional values are bare tokens; a leading dash would be parsed
		// as a flag by the underlying CLI. Numeric positionals are exempt
		// from this check: the CLI's parser reads a lone negative number as
		// a positional, so "-5" from an integer or number value is safe
		// while an arbitrary string starting with "-" is not.
		if p.Kind == catalog.KindPositional && strings.HasPrefix(s, "-") {
			return nil, argumentError(p.Name, "argument %q value %q would be read as a flag token", p.Name, s)
		}
		return s, nil
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
