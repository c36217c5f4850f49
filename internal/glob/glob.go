package glob

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Pattern represents a single glob pattern, either include or exclude.
type Pattern struct {
	Raw     string
	Negated bool
}

// ParsePatterns converts raw pattern strings into Patterns.
// A leading "!" marks an exclusion: "!**/vendor/**".
func ParsePatterns(raw []string) []Pattern {
	patterns := make([]Pattern, 0, len(raw))
	for _, r := range raw {
		if p, ok := strings.CutPrefix(r, "!"); ok {
			patterns = append(patterns, Pattern{Raw: p, Negated: true})
		} else {
			patterns = append(patterns, Pattern{Raw: r})
		}
	}
	return patterns
}

// ExpandPatterns expands the patterns relative to the given root directory
// and returns a sorted, deduplicated list of matching paths (slash-separated,
// relative to root). Directories match as well as files.
func ExpandPatterns(root string, patterns []Pattern) ([]string, error) {
	includes := make(map[string]bool)

	fsys := os.DirFS(root)

	for _, p := range patterns {
		if p.Negated {
			continue
		}
		matches, err := doublestar.Glob(fsys, p.Raw)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", p.Raw, err)
		}
		for _, m := range matches {
			includes[m] = true
		}
	}

	for _, p := range patterns {
		if !p.Negated {
			continue
		}
		for m := range includes {
			ok, err := doublestar.Match(p.Raw, m)
			if err != nil {
				return nil, fmt.Errorf("glob %q: %w", "!"+p.Raw, err)
			}
			if ok {
				delete(includes, m)
			}
		}
	}

	result := make([]string, 0, len(includes))
	for path := range includes {
		result = append(result, path)
	}
	slices.Sort(result)
	return result, nil
}

// Expand is ExpandPatterns over raw pattern strings, returning the matches
// joined onto root in the platform's path syntax.
func Expand(root string, raw []string) ([]string, error) {
	matches, err := ExpandPatterns(root, ParsePatterns(raw))
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	return matches, nil
}
