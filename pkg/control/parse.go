// Package control parses the paragraph format used by Debian
// package indices (Packages files).
package control

import (
	"iter"
	"strings"
)

// Parse returns the records contained in text. The sequence is lazy
// and may be iterated any number of times; each iteration re-reads
// text from the start.
//
// Paragraphs are separated by a blank line and yield exactly one
// record each, even when none of their lines could be parsed.
// Malformed lines are skipped.
func Parse(text string) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		text := strings.ReplaceAll(text, "\r\n", "\n")
		for block := range strings.SplitSeq(text, "\n\n") {
			if strings.TrimSpace(block) == "" {
				continue
			}
			if !yield(parseBlock(block)) {
				return
			}
		}
	}
}

func parseBlock(block string) Record {
	record := Record{}
	var current string
	var open bool
	for line := range strings.SplitSeq(block, "\n") {
		if strings.HasPrefix(line, " ") {
			// continuation lines without a preceding
			// field have nowhere to go
			if !open {
				continue
			}
			record[current] += " " + strings.TrimSpace(line)
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		current, open = strings.TrimSpace(name), true
		record[current] = strings.TrimSpace(value)
	}
	return record
}
