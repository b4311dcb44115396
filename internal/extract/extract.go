// Package extract pulls a JSON value out of generative model output.
//
// Model replies are not guaranteed to be pure JSON: they often carry
// markdown fences, leading commentary or a trailing sign-off around the
// actual value. Extraction scans for the first structurally balanced
// object or array, counting bracket depth while respecting string
// literals and escape sequences, and falls back to parsing the whole
// text verbatim.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skillscan/scanworker/internal/career"
)

// StripFences removes a surrounding markdown code fence, if any.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimLeft(s, "\r\n")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// JSON returns the first balanced JSON object or array embedded in text.
// If no balanced bracketed region parses, the whole text is tried as-is.
// Returns career.ErrMalformedResponse when nothing parses.
func JSON(text string) (any, error) {
	cleaned := StripFences(text)

	start := 0
	for {
		open := strings.IndexAny(cleaned[start:], "{[")
		if open < 0 {
			break
		}
		open += start
		if end, ok := matchClose(cleaned, open); ok {
			var v any
			if err := json.Unmarshal([]byte(cleaned[open:end+1]), &v); err == nil {
				return v, nil
			}
			// Balanced but not valid JSON (e.g. code snippet in prose);
			// keep scanning from the next opener.
		}
		start = open + 1
	}

	var v any
	if err := json.Unmarshal([]byte(cleaned), &v); err == nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", career.ErrMalformedResponse, truncate(cleaned, 120))
}

// matchClose finds the index of the closer balancing the opener at start.
// Brackets inside string literals are ignored and escapes are honored.
func matchClose(s string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
