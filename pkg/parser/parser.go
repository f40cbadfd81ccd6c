// Package parser turns the indentation-structured "Key: value" text printed by
// pulp-admin's list commands into nested Blocks.
//
// The input looks like:
//
//	+------------------------------------------+
//	             RPM Repositories
//	+------------------------------------------+
//
//	Id:            repo1
//	Display Name:  Repo One
//	Importers:
//	  Config:
//	    Feed:      http://example.com/feed
//
//	Id:            repo2
//	...
//
// Blocks are separated by a blank line and the first block is the banner. Inside a
// block a key with an empty value opens a nested block indented two more spaces, and a
// long value may wrap onto following lines aligned under the column where it started.
package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// nestedIndent is how much deeper a nested block is indented than its parent key.
const nestedIndent = "  "

var scheduleIDPattern = regexp.MustCompile(`^Id:\s*(.+)`)

// Parse splits the output of a "list --details" command into one Block per entity.
// The banner block and blank artifacts are discarded. An entity whose first line is
// not a key at column zero yields a nil Block.
func Parse(text string) []Block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	chunks := strings.Split(text, "\n\n")
	if len(chunks) == 0 {
		return nil
	}

	// Throw away the header.
	chunks = chunks[1:]

	blocks := make([]Block, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimLeft(chunk, "\n")
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		blocks = append(blocks, ParseBlock(chunk))
	}
	return blocks
}

// ParseBlock parses a single entity block. Parsing stops at the first line that is
// not a key at the top level; everything parsed before it is returned.
func ParseBlock(text string) Block {
	r := &lineReader{lines: splitLines(text)}
	return parseLines(r, "")
}

// ScheduleIDs extracts the schedule ids from "repo sync schedules list" output.
func ScheduleIDs(text string) []string {
	var ids []string
	for _, line := range strings.Split(text, "\n") {
		if m := scheduleIDPattern.FindStringSubmatch(line); m != nil {
			ids = append(ids, strings.TrimSpace(m[1]))
		}
	}
	return ids
}

// SplitList splits a comma separated value and trims each item.
// An empty value gives an empty, non-nil slice.
func SplitList(value string) []string {
	items := []string{}
	if strings.TrimSpace(value) == "" {
		return items
	}
	for _, item := range strings.Split(value, ",") {
		items = append(items, strings.TrimSpace(item))
	}
	for len(items) > 0 && items[len(items)-1] == "" {
		items = items[:len(items)-1]
	}
	return items
}

func parseLines(r *lineReader, indent string) Block {
	pattern := keyPattern(indent)
	result := Block{}

	for {
		line, ok := r.next()
		if !ok {
			break
		}

		m := pattern.FindStringSubmatch(line)
		if m == nil {
			r.unread()
			break
		}

		name := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[3])
		if value == "" {
			result[name] = parseLines(r, indent+nestedIndent)
			continue
		}

		valueIndent := strings.Repeat(" ", len(m[1])+len(m[2])+1)
		for {
			next, ok := r.peek()
			if !ok || !isContinuation(next, valueIndent) {
				break
			}
			r.next()
			value += strings.TrimSpace(next)
		}
		result[name] = value
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// keyPattern matches "<indent>Key:<spaces><value>". The key must start with a
// non-space character and runs up to the first colon.
func keyPattern(indent string) *regexp.Regexp {
	return regexp.MustCompile(`^(` + regexp.QuoteMeta(indent) + `[^\s][^:]+):(\s*)(.*)$`)
}

func isContinuation(line, valueIndent string) bool {
	if !strings.HasPrefix(line, valueIndent) || len(line) == len(valueIndent) {
		return false
	}
	return !unicode.IsSpace(rune(line[len(valueIndent)]))
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type lineReader struct {
	lines []string
	pos   int
}

func (r *lineReader) next() (string, bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	line := r.lines[r.pos]
	r.pos++
	return line, true
}

func (r *lineReader) peek() (string, bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	return r.lines[r.pos], true
}

func (r *lineReader) unread() {
	if r.pos > 0 {
		r.pos--
	}
}
