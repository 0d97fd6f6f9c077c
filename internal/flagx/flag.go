// Package flagx lets several independent parsers share one command line: each
// parser filters os.Args down to the flags it owns before calling flag.Parse.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the flags listed in allowed, together with their
// values. The map value tells whether the flag consumes the following
// argument ("-f store.txt"); switches such as "-s" never do. The
// "-flag=value" form is always kept whole.
//
// The result is never nil.
func FilterArgs(args []string, allowed map[string]bool) []string {
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		takesValue, ok := allowed[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)

		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFileFlag extracts the JSON config path given with -c or -config.
// Everything else on the command line is ignored; an empty string means no
// config file was requested. When both appear the last one wins.
func ConfigFileFlag(args []string) string {
	var config string

	filtered := FilterArgs(args, map[string]bool{"-c": true, "-config": true})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(filtered)

	return config
}
