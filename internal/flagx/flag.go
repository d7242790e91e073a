// Package flagx separates kcc's global flags from the command that follows
// them on the command line.
package flagx

import "strings"

// Spec lists the global flags by kind, without dashes.
type Spec struct {
	Value []string // flags taking a value: -c conf.json, -c=conf.json
	Bool  []string // switches: -no-color, -no-color=false
}

// SplitLeading consumes the known flags at the start of args and returns them
// together with everything from the first other token on. Flags may use one
// or two dashes. "--" ends the flags and is dropped.
//
// Only the leading run is inspected, so message text such as
// "kcc /go -c is fine" is never mistaken for a flag.
func SplitLeading(args []string, spec Spec) (flags, rest []string) {
	value := set(spec.Value)
	boolean := set(spec.Bool)

	flags = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return flags, args[i+1:]
		}

		name, hasValue := flagName(arg)
		switch {
		case name == "":
			return flags, args[i:]
		case boolean[name]:
			flags = append(flags, arg)
		case value[name]:
			flags = append(flags, arg)
			if !hasValue && i+1 < len(args) {
				flags = append(flags, args[i+1])
				i++
			}
		default:
			return flags, args[i:]
		}
	}

	return flags, []string{}
}

// flagName returns the name of a -name / --name / -name=value token, or ""
// if arg is not a flag.
func flagName(arg string) (string, bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, _, hasValue := strings.Cut(name, "=")
	return name, hasValue
}

func set(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// JsonConfigFlag extracts the config file path given with -c or -config from
// already split global flags. The last occurrence wins; "" means none.
func JsonConfigFlag(flags []string) string {
	var config string
	for i := 0; i < len(flags); i++ {
		name, hasValue := flagName(flags[i])
		if name != "c" && name != "config" {
			continue
		}
		if hasValue {
			_, config, _ = strings.Cut(flags[i], "=")
			continue
		}
		if i+1 < len(flags) {
			config = flags[i+1]
			i++
		}
	}
	return config
}
