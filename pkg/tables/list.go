package tables

import (
	"strconv"
	"strings"

	"github.com/matzehuels/locusmap/pkg/errors"
)

// splitList returns the comma-separated items of a "[a, b]" cell, trimmed
// of whitespace. "[]" and the empty cell give no items.
func splitList(cell string) ([]string, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, errors.New(errors.ErrCodeInvalidInput, "not a list: %q", cell)
	}
	s = strings.TrimSpace(s[1 : len(s)-1])
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// ParseInts parses an integer list cell such as "[12, 13, 14]".
func ParseInts(cell string) ([]int, error) {
	parts, err := splitList(cell)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad list item in %q", cell)
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseStrings parses a string list cell such as "['c1_1', 'c1_2']".
// Items may be single-quoted, double-quoted or bare.
func ParseStrings(cell string) ([]string, error) {
	parts, err := splitList(cell)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, unquote(p))
	}
	return out, nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		if q := s[0]; (q == '\'' || q == '"') && s[len(s)-1] == q {
			return s[1 : len(s)-1]
		}
	}
	return s
}
