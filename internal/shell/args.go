package shell

import "strings"

// pathKey is the argument key holding the first non-flag token.
const pathKey = "path"

// flagSpec maps a flag name, without its dash, to whether it takes a value.
type flagSpec map[string]bool

// parseArgs scans tokens left to right. Known flags are recorded under their
// name, consuming the next token when they take a value; unknown dash-prefixed
// tokens are ignored. The first remaining token becomes the path.
func parseArgs(tokens []string, flags flagSpec) (map[string]any, error) {
	values := make(map[string]any)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if strings.HasPrefix(tok, "-") {
			name := tok[1:]
			takesValue, known := flags[name]
			if !known {
				continue
			}
			if !takesValue {
				values[name] = true
				continue
			}
			if i+1 >= len(tokens) {
				return nil, errFlagValueRequired
			}
			values[name] = tokens[i+1]
			i++
			continue
		}

		if _, ok := values[pathKey]; !ok {
			values[pathKey] = tok
		}
	}

	return values, nil
}
