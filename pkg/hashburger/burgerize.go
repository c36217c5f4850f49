// Package hashburger shortens strings and paths to a fixed width.
//
// A hashburger keeps the first and last few characters of its input (the
// buns) and replaces everything in between with a few decimal digits of a
// hash of the removed text (the hashpatty):
//
//	Burgerize("hashburger-example", DefaultOptions()) // "hash" + 2 digits + "mple"
//
// Inputs that already fit are returned as-is, or right-padded when a
// padding character is configured.
package hashburger

import (
	"strconv"
	"strings"
)

// Burgerize returns the hashburger of input. The result is exactly
// opts.Length() characters long unless input is shorter and no padding
// character is set, in which case input is returned unchanged.
//
// Burgerize panics on negative lengths; use Options.Validate on untrusted
// options.
func Burgerize(input string, opts Options) string {
	opts.mustBeSane()

	total := opts.Length()
	cuts := opts.Unit.boundaries(input)
	n := len(cuts) - 1

	if n <= total {
		if opts.PaddingChar == 0 {
			return input
		}
		return input + strings.Repeat(string(opts.PaddingChar), total-n)
	}

	leftEnd := cuts[opts.LeftBunLength]
	rightStart := cuts[n-opts.RightBunLength]

	var b strings.Builder
	b.Grow(leftEnd + opts.CenterLength + len(input) - rightStart)
	b.WriteString(input[:leftEnd])
	b.WriteString(hashpatty(input[leftEnd:rightStart], opts.CenterLength, opts.digest()))
	b.WriteString(input[rightStart:])
	return b.String()
}

// hashpatty renders the last length decimal digits of the patty's digest,
// zero-padded on the left. Growing length only adds digits on the left.
func hashpatty(patty string, length int, digest DigestFunc) string {
	if length == 0 {
		return ""
	}

	digits := strconv.FormatUint(digest([]byte(patty)), 10)
	if len(digits) >= length {
		return digits[len(digits)-length:]
	}
	return strings.Repeat("0", length-len(digits)) + digits
}
