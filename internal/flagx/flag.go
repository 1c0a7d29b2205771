// Package flagx lets independent loaders pick their own flags out of os.Args
// without tripping over flags that belong to someone else.
package flagx

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// FilterArgs keeps only the arguments naming one of the known flags, together
// with their values. Both "-f value" and "-f=value" forms are understood; a
// following argument that starts with "-" is never taken as a value.
// The result is never nil.
func FilterArgs(args []string, known []string) []string {
	keep := make(map[string]bool, len(known))
	for _, name := range known {
		keep[name] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if keep[name] {
				out = append(out, arg)
			}
			continue
		}

		if !keep[arg] {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

// ConfigFlags are the spellings that name the config file.
var ConfigFlags = []string{"-c", "--c", "-config", "--config"}

// ConfigPath returns the config file named by -c or -config (either with one
// or two dashes), or an empty string when none is given. When several appear
// the last one wins. A flag given without a value is an error.
func ConfigPath() (string, error) {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	if err := fs.Parse(FilterArgs(os.Args[1:], ConfigFlags)); err != nil {
		return "", fmt.Errorf("config flag: %w", err)
	}

	return path, nil
}
