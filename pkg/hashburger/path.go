package hashburger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrNotText is returned for paths whose components are not valid UTF-8.
var ErrNotText = errors.New("path component is not valid UTF-8 text")

var separator = string(filepath.Separator)

// Components is a path broken into its root and its segments.
type Components struct {
	// Root is the volume name and/or root separator of an absolute path,
	// kept verbatim. Empty for relative paths.
	Root string

	// Parts are the path segments in order. Empty segments and "." segments
	// are dropped, except a "." that starts a relative path.
	Parts []string
}

// Split breaks path into its root and its components. It fails with
// ErrNotText when a component is not valid UTF-8.
func Split(path string) (Components, error) {
	root := filepath.VolumeName(path)
	rest := path[len(root):]
	if rest != "" && os.IsPathSeparator(rest[0]) {
		root += rest[:1]
		rest = rest[1:]
	}
	if !utf8.ValidString(root) {
		return Components{}, fmt.Errorf("root %q: %w", root, ErrNotText)
	}

	fields := strings.FieldsFunc(rest, func(r rune) bool {
		return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
	})

	parts := make([]string, 0, len(fields))
	for i, f := range fields {
		if f == "." && (i > 0 || root != "") {
			continue
		}
		if !utf8.ValidString(f) {
			return Components{}, fmt.Errorf("component %d %q: %w", len(parts), f, ErrNotText)
		}
		parts = append(parts, f)
	}

	return Components{Root: root, Parts: parts}, nil
}

// BurgerizePath burgerizes the first opts.StartComponents and the last
// opts.EndComponents components of input and drops the ones in between,
// marking the gap with opts.Divider:
//
//	/home/user/src/project/main.go -> /home/user:project/main.go (each part burgerized)
//
// When the two groups cover the whole path, every component is kept and no
// divider is written. The root of an absolute path is copied verbatim.
//
// BurgerizePath panics on negative lengths or counts and on a zero divider;
// use PathOptions.Validate on untrusted options.
func BurgerizePath(input string, opts PathOptions) (string, error) {
	opts.mustBeSane()

	c, err := Split(input)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(c.Root)

	n := len(c.Parts)
	// Start+End >= n, written so huge counts cannot overflow.
	if opts.StartComponents >= n || opts.EndComponents >= n-opts.StartComponents {
		b.WriteString(burgerizeJoin(c.Parts, opts.Options))
		return b.String(), nil
	}

	b.WriteString(burgerizeJoin(c.Parts[:opts.StartComponents], opts.Options))
	b.WriteRune(opts.Divider)
	b.WriteString(burgerizeJoin(c.Parts[n-opts.EndComponents:], opts.Options))
	return b.String(), nil
}

// burgerizeJoin burgerizes each part and joins them with the separator.
// Parts that burgerize to "" (all lengths 0) still get their separator, so
// the result can contain empty segments such as "a//b".
func burgerizeJoin(parts []string, opts Options) string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = Burgerize(p, opts)
	}
	return strings.Join(out, separator)
}
