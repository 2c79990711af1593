// Package dxf reads ASCII DXF drawing files into a flat entity model.
// Only the ENTITIES section (model space) is parsed; everything the
// converter does not need (headers, tables, blocks) is skipped.
package dxf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Tag is one group-code/value pair from a DXF tag stream.
type Tag struct {
	Code  int
	Value string
}

// Float parses the tag value as a float64.
func (t Tag) Float() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("group %d: bad float %q", t.Code, t.Value)
	}
	return v, nil
}

// Int parses the tag value as an int.
func (t Tag) Int() (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(t.Value))
	if err != nil {
		return 0, fmt.Errorf("group %d: bad integer %q", t.Code, t.Value)
	}
	return v, nil
}

// readTags tokenizes an ASCII DXF stream into tags. Each tag occupies two
// physical lines: the group code, then the value. A non-numeric group code
// or a dangling code line is a read error.
func readTags(r io.Reader) ([]Tag, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var tags []Tag
	line := 0
	for scanner.Scan() {
		line++
		codeText := strings.TrimSpace(scanner.Text())
		code, err := strconv.Atoi(codeText)
		if err != nil {
			return nil, fmt.Errorf("line %d: group code %q is not a number", line, codeText)
		}
		if !scanner.Scan() {
			return nil, fmt.Errorf("line %d: group code %d has no value line", line, code)
		}
		line++
		// Values keep leading whitespace trimmed only; group code 1 text
		// values are not used by this reader so aggressive trimming is fine.
		tags = append(tags, Tag{Code: code, Value: strings.TrimSpace(scanner.Text())})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
