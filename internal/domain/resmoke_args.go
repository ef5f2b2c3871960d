package domain

import "strings"

const suitesArg = "suites"

// GetResmokeArg returns the value of --name=value or --name value.
func GetResmokeArg(args, name string) (string, bool) {
	flag := "--" + name
	fields := strings.Fields(args)

	for i, field := range fields {
		if value, ok := strings.CutPrefix(field, flag+"="); ok {
			return value, true
		}

		if field == flag && i+1 < len(fields) && !strings.HasPrefix(fields[i+1], "-") {
			return fields[i+1], true
		}
	}

	return "", false
}

// RemoveResmokeArg drops every --name=value / --name value occurrence.
// Arguments without the flag are returned unchanged.
func RemoveResmokeArg(args, name string) string {
	if _, ok := GetResmokeArg(args, name); !ok {
		return args
	}

	flag := "--" + name
	fields := strings.Fields(args)
	kept := make([]string, 0, len(fields))

	for i := 0; i < len(fields); i++ {
		field := fields[i]

		if strings.HasPrefix(field, flag+"=") {
			continue
		}

		if field == flag {
			if i+1 < len(fields) && !strings.HasPrefix(fields[i+1], "-") {
				i++
			}

			continue
		}

		kept = append(kept, field)
	}

	return strings.Join(kept, " ")
}
