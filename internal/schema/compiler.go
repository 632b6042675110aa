package schema

import (
	"fmt"

	"github.com/opennotebook/toolbridge/internal/catalog"
)

// CompileError records one command descriptor that failed to compile.
type CompileError struct {
	Command string
	Err     error
}

func (e CompileError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

// Compile converts a catalog into tool schemas. It is a pure function: the
// same catalog always yields identical output, and nothing is mutated.
// A command whose descriptor is malformed is skipped and reported; the rest
// of the catalog still compiles.
func Compile(cat catalog.Catalog) (map[string]ToolSpec, []CompileError) {
	specs := make(map[string]ToolSpec, len(cat.Commands))
	var errs []CompileError

	for _, cmd := range cat.Commands {
		if _, dup := specs[cmd.Name]; dup {
			errs = append(errs, CompileError{Command: cmd.Name, Err: fmt.Errorf("duplicate command name")})
			continue
		}
		spec, err := compileCommand(cmd)
		if err != nil {
			errs = append(errs, CompileError{Command: cmd.Name, Err: err})
			continue
		}
		specs[cmd.Name] = spec
	}

	return specs, errs
}

// compileCommand builds the ToolSpec for one command. Every declared
// parameter appears exactly once in the schema.
func compileCommand(cmd catalog.Command) (ToolSpec, error) {
	if err := cmd.Validate(); err != nil {
		return ToolSpec{}, err
	}

	description := cmd.Help
	if description == "" {
		description = fmt.Sprintf("Execute the %s command", cmd.Name)
	}

	properties := make(map[string]ParameterSpec, len(cmd.Params))
	var required []string

	for _, p := range cmd.Params {
		properties[p.Name] = compileParameter(p)
		// Positionals are required by construction (a trailing optional
		// positional is the declared exception); flags and options are
		// required only when the descriptor marks them so.
		if p.Required {
			required = append(required, p.Name)
		}
	}
	if required == nil {
		required = []string{}
	}

	return ToolSpec{
		Name:        cmd.Name,
		Description: description,
		Parameters: ToolParameters{
			Type:       TypeObject,
			Properties: properties,
			Required:   required,
		},
	}, nil
}

// compileParameter maps one descriptor onto the fixed type vocabulary.
func compileParameter(p catalog.Parameter) ParameterSpec {
	spec := ParameterSpec{
		Type:        inferType(p),
		Description: p.Help,
		Default:     p.Default,
	}

	if len(p.Choices) > 0 {
		spec.Enum = append([]string(nil), p.Choices...)
	}
	if spec.Type == TypeArray {
		spec.Items = &ItemsSpec{Type: TypeString}
	}
	if spec.Type == TypeBoolean && spec.Default == nil {
		// A boolean flag that is never passed reads as false.
		spec.Default = false
	}

	return spec
}

// inferType applies the type inference policy: repeated values compile to
// array-of-string, flags to boolean, numeric annotations to integer/number,
// everything else to string.
func inferType(p catalog.Parameter) string {
	if p.Repeated {
		return TypeArray
	}
	switch p.EffectiveType() {
	case catalog.TypeBoolean:
		return TypeBoolean
	case catalog.TypeInteger:
		return TypeInteger
	case catalog.TypeNumber:
		return TypeNumber
	default:
		return TypeString
	}
}
