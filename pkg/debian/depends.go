package debian

import (
	"github.com/djcass44/debviz/pkg/control"
	"regexp"
	"strings"
)

var regexpConstraint = regexp.MustCompile(`\([^)]*\)`)

// ParseDepends extracts the package names from a relationship field
// such as "Depends". Version constraints are removed and alternatives
// ("a | b") are flattened, so every option is returned as its own
// name. Order and duplicates are preserved.
//
// https://www.debian.org/doc/debian-policy/ch-relationships.html
func ParseDepends(s string) []string {
	s = regexpConstraint.ReplaceAllString(s, "")
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|'
	})
	names := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			names = append(names, t)
		}
	}
	return names
}

// Dependencies reads each of the given fields from the record and
// returns their combined dependency names. A missing field yields
// no names.
func Dependencies(record control.Record, fields ...string) []string {
	if len(fields) == 0 {
		fields = []string{control.FieldDepends}
	}
	names := []string{}
	for _, f := range fields {
		names = append(names, ParseDepends(record.Get(f))...)
	}
	return names
}
