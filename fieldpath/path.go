package fieldpath

import (
	"strconv"
	"strings"
)

// Segment is one step of a path: a field name, optionally followed by a list
// index.
type Segment struct {
	Name    string
	Index   int
	Indexed bool
}

func (s Segment) String() string {
	if !s.Indexed {
		return s.Name
	}

	return s.Name + "[" + strconv.Itoa(s.Index) + "]"
}

// Path is a parsed field path.
type Path struct {
	Segments []Segment
}

func (p Path) String() string {
	parts := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		parts[i] = s.String()
	}

	return strings.Join(parts, ".")
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.Segments)
}

// Parse parses a field path string into a Path.
// Supports: "field", "group.field", "list[0].field".
func Parse(path string) (Path, error) {
	if path == "" {
		return Path{}, syntaxError(path, "", "empty path")
	}

	var segments []Segment

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return Path{}, syntaxError(path, part, "empty segment")
		}

		seg := Segment{Name: part}

		// Check for index notation
		if open := strings.IndexByte(part, '['); open >= 0 {
			if !strings.HasSuffix(part, "]") {
				return Path{}, syntaxError(path, part, "unterminated index")
			}

			seg.Name = part[:open]
			digits := part[open+1 : len(part)-1]

			if seg.Name == "" {
				return Path{}, syntaxError(path, part, "index without field name")
			}

			if !isDecimal(digits) {
				return Path{}, syntaxError(path, part, "index must be a non-negative integer")
			}

			idx, err := strconv.Atoi(digits)
			if err != nil {
				return Path{}, syntaxError(path, part, "index too large")
			}

			seg.Index = idx
			seg.Indexed = true
		}

		if !isValidIdent(seg.Name) {
			return Path{}, syntaxError(path, part, "invalid identifier")
		}

		segments = append(segments, seg)
	}

	return Path{Segments: segments}, nil
}

// Join builds a path string from a parent path and a child segment.
func Join(parent string, seg Segment) string {
	if parent == "" {
		return seg.String()
	}

	return parent + "." + seg.String()
}

// isValidIdent checks if a string is a valid Go identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			// Subsequent characters can be letter, digit, or underscore
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
