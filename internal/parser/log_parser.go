package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const maxLineBytes = 16 << 20

// isSample reports whether tok is a non-negative decimal: digits with at most
// one '.' somewhere. Signs, exponents and anything else are rejected.
func isSample(tok string) bool {
	digits := strings.Replace(tok, ".", "", 1)
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// sectionLabel extracts the label of a header line. The line is known to start
// with '['; the label ends at the first ']' or at end of line.
func sectionLabel(line string) string {
	label := line[1:]
	if end := strings.IndexByte(label, ']'); end >= 0 {
		label = label[:end]
	}
	return label
}

// ParseLog reads a sectioned performance log.
//
// A line starting with '[' opens a section. Every other line contributes its
// numeric tokens to the open section, in order. Lines before the first header
// are ignored, as are tokens that are not plain non-negative decimals.
func ParseLog(r io.Reader) (*SectionTable, error) {
	table := NewSectionTable()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	current := ""
	inSection := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.HasPrefix(line, "[") {
			current = sectionLabel(line)
			if err := table.open(current); err != nil {
				return nil, fmt.Errorf("line %d: [%s]: %w", lineNo, current, err)
			}
			inSection = true
			continue
		}
		if !inSection {
			continue
		}

		for _, tok := range strings.Fields(line) {
			if !isSample(tok) {
				continue
			}
			val, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				// Digits-only tokens can still overflow float64; those are dropped.
				continue
			}
			table.add(current, val)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log data: %w", err)
	}
	return table, nil
}

// ParseLogFile opens filepath and parses it with ParseLog.
func ParseLogFile(filepath string) (*SectionTable, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	table, err := ParseLog(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return table, nil
}
