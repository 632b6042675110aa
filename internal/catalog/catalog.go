// Package catalog declares the set of notebook CLI commands the bridge can
// expose. The catalog is declarative input: the bridge reads it, compiles it
// into tool schemas, and never mutates it.
package catalog

import (
	"fmt"
	"strings"
)

// ParamKind distinguishes how a parameter is passed on the command line.
type ParamKind string

const (
	// KindPositional parameters are passed as bare tokens in declared order.
	KindPositional ParamKind = "positional"
	// KindFlag parameters are boolean switches with no value token.
	KindFlag ParamKind = "flag"
	// KindOption parameters are passed as --name=value tokens.
	KindOption ParamKind = "option"
)

// ValueType is the declared scalar type of a parameter value.
type ValueType string

const (
	TypeString  ValueType = "string"
	TypeInteger ValueType = "integer"
	TypeNumber  ValueType = "number"
	TypeBoolean ValueType = "boolean"
)

// Parameter describes one command parameter.
type Parameter struct {
	Name     string    `json:"name"`
	Kind     ParamKind `json:"kind"`
	Type     ValueType `json:"type,omitempty"`
	Required bool      `json:"required,omitempty"`
	Default  any       `json:"default,omitempty"`
	// Repeated marks an option that accepts multiple value tokens.
	Repeated bool     `json:"repeated,omitempty"`
	Choices  []string `json:"choices,omitempty"`
	Help     string   `json:"help,omitempty"`
}

// EffectiveType returns the declared type, defaulting to string for
// positional/option parameters and boolean for flags.
func (p Parameter) EffectiveType() ValueType {
	if p.Type != "" {
		return p.Type
	}
	if p.Kind == KindFlag {
		return TypeBoolean
	}
	return TypeString
}

// FlagToken returns the command-line token for a flag or option parameter.
// Schema names use snake_case; the CLI expects kebab-case.
func (p Parameter) FlagToken() string {
	return "--" + strings.ReplaceAll(p.Name, "_", "-")
}

// Command describes one invocable CLI command.
type Command struct {
	Name   string      `json:"name"`
	Help   string      `json:"help,omitempty"`
	Params []Parameter `json:"params,omitempty"`
}

// Catalog is an ordered set of command descriptors.
type Catalog struct {
	Commands []Command `json:"commands"`
}

// Validate checks a single command descriptor for shape errors. Positional
// parameters are required by construction and carry no default; only the
// trailing positional may be marked optional (mirrors an argparse '?'
// positional). Flags must be boolean.
func (c Command) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("command has empty name")
	}
	seen := make(map[string]bool, len(c.Params))
	sawOptionalPositional := false
	for _, p := range c.Params {
		if p.Name == "" {
			return fmt.Errorf("command %q has a parameter with empty name", c.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("command %q has duplicate parameter %q", c.Name, p.Name)
		}
		seen[p.Name] = true

		switch p.Kind {
		case KindPositional:
			if p.Default != nil {
				return fmt.Errorf("command %q: positional parameter %q cannot have a default", c.Name, p.Name)
			}
			if p.EffectiveType() == TypeBoolean {
				return fmt.Errorf("command %q: positional parameter %q cannot be boolean", c.Name, p.Name)
			}
			if p.Repeated {
				return fmt.Errorf("command %q: positional parameter %q cannot be repeated", c.Name, p.Name)
			}
			if sawOptionalPositional {
				return fmt.Errorf("command %q: positional parameter %q follows an optional positional", c.Name, p.Name)
			}
			if !p.Required {
				sawOptionalPositional = true
			}
		case KindFlag:
			if p.EffectiveType() != TypeBoolean {
				return fmt.Errorf("command %q: flag parameter %q must be boolean", c.Name, p.Name)
			}
			if p.Repeated {
				return fmt.Errorf("command %q: flag parameter %q cannot be repeated", c.Name, p.Name)
			}
		case KindOption:
			if p.Repeated && p.EffectiveType() != TypeString {
				return fmt.Errorf("command %q: repeated option %q must hold strings", c.Name, p.Name)
			}
		default:
			return fmt.Errorf("command %q: parameter %q has unknown kind %q", c.Name, p.Name, p.Kind)
		}

		switch p.EffectiveType() {
		case TypeString, TypeInteger, TypeNumber, TypeBoolean:
		default:
			return fmt.Errorf("command %q: parameter %q has unsupported type %q", c.Name, p.Name, p.Type)
		}

		if len(p.Choices) > 0 && p.EffectiveType() != TypeString {
			return fmt.Errorf("command %q: parameter %q declares choices on non-string type", c.Name, p.Name)
		}
	}
	return nil
}

// Positionals returns the positional parameters in declared order.
func (c Command) Positionals() []Parameter {
	var out []Parameter
	for _, p := range c.Params {
		if p.Kind == KindPositional {
			out = append(out, p)
		}
	}
	return out
}
