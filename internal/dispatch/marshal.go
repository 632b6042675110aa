package dispatch

import (
	"strconv"

	"github.com/opennotebook/toolbridge/internal/catalog"
)

// buildArgv marshals validated argument values into the command's invocation
// form: positional tokens in declared order, bare flag tokens for true
// booleans, --name=value tokens for options, and value lists for repeated
// options. Values arrive pre-validated, so no token here can collide with a
// flag the CLI reserves.
//
// If a parameter were passable both positionally and as an option, the
// option form wins; the catalog's kind field makes the choice explicit so
// the two can never be emitted together.
func buildArgv(cmd catalog.Command, values map[string]any) []string {
	argv := make([]string, 0, len(cmd.Params)+1)
	argv = append(argv, cmd.Name)

	for _, p := range cmd.Params {
		v, present := values[p.Name]
		if !present {
			continue
		}
		switch p.Kind {
		case catalog.KindPositional:
			argv = append(argv, formatValue(v))
		case catalog.KindFlag:
			if b, ok := v.(bool); ok && b {
				argv = append(argv, p.FlagToken())
			}
		case catalog.KindOption:
			if p.Repeated {
				items := v.([]string)
				if len(items) == 0 {
					continue
				}
				argv = append(argv, p.FlagToken())
				argv = append(argv, items...)
				continue
			}
			argv = append(argv, p.FlagToken()+"="+formatValue(v))
		}
	}

	return argv
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
