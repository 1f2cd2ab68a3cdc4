package gedcom

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Line format: LEVEL [@XREF@] TAG [value]
// Real-world exports are messy: CRLF line endings, UTF-8 BOM, blank
// lines, and occasionally levels that skip a step. The parser tolerates
// all of these; it only fails when the input is unreadable or contains
// no top-level records at all.

// ParseFile reads and parses a GEDCOM file from disk.
func ParseFile(path string) ([]*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open GEDCOM file %s: %w", path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GEDCOM file %s: %w", path, err)
	}
	return records, nil
}

// Parse reads GEDCOM text and returns the top-level records in file
// order. CONC continuations are merged into their parent's value at
// parse time; CONT continuations are preserved as child nodes so note
// assembly can reintroduce the line breaks.
func Parse(r io.Reader) ([]*Node, error) {
	var records []*Node

	// stack[i] is the most recent node seen at level i
	var stack []*Node

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		level, node, ok := parseLine(line)
		if !ok {
			// Malformed line in an otherwise valid file. Skip it rather
			// than aborting the whole import.
			continue
		}

		if level == 0 {
			records = append(records, node)
			stack = stack[:0]
			stack = append(stack, node)
			continue
		}

		if len(stack) == 0 {
			// Subordinate line before any top-level record. Nothing to
			// attach it to.
			continue
		}

		// Clamp levels that skip a step to the deepest known parent.
		if level > len(stack) {
			level = len(stack)
		}
		parent := stack[level-1]

		if node.Tag == "CONC" {
			parent.Value += node.Value
			continue
		}

		parent.Children = append(parent.Children, node)
		stack = append(stack[:level], node)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read GEDCOM input: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("input contains no GEDCOM records")
	}
	return records, nil
}

// parseLine splits a single GEDCOM line into its level and node. The
// optional cross-reference id sits between the level and the tag on
// top-level records.
func parseLine(line string) (int, *Node, bool) {
	parts := strings.SplitN(strings.TrimLeft(line, " \t"), " ", 3)
	if len(parts) < 2 {
		return 0, nil, false
	}

	level, err := strconv.Atoi(parts[0])
	if err != nil || level < 0 {
		return 0, nil, false
	}

	node := &Node{}
	rest := parts[1:]
	if strings.HasPrefix(rest[0], "@") && strings.HasSuffix(rest[0], "@") && len(rest[0]) > 2 {
		node.XRefID = rest[0]
		if len(rest) < 2 {
			return 0, nil, false
		}
		// Re-split so the tag and value separate cleanly.
		rest = strings.SplitN(rest[1], " ", 2)
	}

	node.Tag = strings.ToUpper(rest[0])
	if len(rest) > 1 {
		node.Value = rest[1]
	}
	if node.Tag == "" {
		return 0, nil, false
	}
	return level, node, true
}
