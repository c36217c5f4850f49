package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/gur-shatz/hashburger/internal/hasher"
	"github.com/gur-shatz/hashburger/pkg/hashburger"
)

// Settings is everything hburger can be configured with, from the config
// file, flags or HTTP query parameters.
type Settings struct {
	Burger BurgerSettings `yaml:"burger"`
	Path   PathSettings   `yaml:"path"`
	Serve  ServeSettings  `yaml:"serve"`
}

// MaxLength bounds each burger length setting; it matches the lte tags below.
// Settings arrive from HTTP clients, and padding and hashpatties are
// allocated at the requested size.
const MaxLength = 4096

// BurgerSettings shape a single hashburger.
type BurgerSettings struct {
	LeftBunLength  int    `yaml:"left_bun_length" validate:"gte=0,lte=4096"`
	CenterLength   int    `yaml:"center_length" validate:"gte=0,lte=4096"`
	RightBunLength int    `yaml:"right_bun_length" validate:"gte=0,lte=4096"`
	PaddingChar    string `yaml:"padding_char" validate:"omitempty,len=1"`
	Algorithm      string `yaml:"algorithm"`
	Graphemes      bool   `yaml:"graphemes"`
}

// PathSettings control which path components survive.
type PathSettings struct {
	StartComponents int    `yaml:"start_components" validate:"gte=0"`
	EndComponents   int    `yaml:"end_components" validate:"gte=0"`
	Divider         string `yaml:"divider" validate:"len=1"`
}

// ServeSettings configure the HTTP API.
type ServeSettings struct {
	Addr string `yaml:"addr" validate:"required"`
}

// Default returns the built-in settings. They match DefaultConfigYAML.
func Default() Settings {
	return Settings{
		Burger: BurgerSettings{
			LeftBunLength:  4,
			CenterLength:   2,
			RightBunLength: 4,
			Algorithm:      hasher.XXHash,
		},
		Path: PathSettings{
			StartComponents: 2,
			EndComponents:   2,
			Divider:         ":",
		},
		Serve: ServeSettings{
			Addr: ":8080",
		},
	}
}

// DefaultConfigYAML is written by "hburger init".
const DefaultConfigYAML = `# hburger configuration
# Flags given on the command line override these values.

burger:
  # characters kept from the start of each string
  left_bun_length: 4
  # decimal hash digits replacing the middle
  center_length: 2
  # characters kept from the end of each string
  right_bun_length: 4
  # single character used to right-pad short strings ("" = no padding)
  padding_char: ""
  # xxhash, fnv or sha256
  algorithm: xxhash
  # count user-perceived characters instead of code points
  graphemes: false

path:
  # components kept from the start of a path
  start_components: 2
  # components kept from the end of a path
  end_components: 2
  # marks the dropped components
  divider: ":"

serve:
  addr: ":8080"
`

// keys maps the flat name of each overridable setting to its dotted path.
var keys = map[string]string{
	"left_bun_length":  "burger.left_bun_length",
	"center_length":    "burger.center_length",
	"right_bun_length": "burger.right_bun_length",
	"padding_char":     "burger.padding_char",
	"algorithm":        "burger.algorithm",
	"graphemes":        "burger.graphemes",
	"start_components": "path.start_components",
	"end_components":   "path.end_components",
	"divider":          "path.divider",
	"addr":             "serve.addr",
}

// KeyPath returns the dotted path of a flat setting name such as
// "center_length".
func KeyPath(name string) (string, bool) {
	path, ok := keys[name]
	return path, ok
}

// Apply returns a copy of the settings with overrides decoded on top and
// validates the result. An empty overrides object only validates.
func (this Settings) Apply(overrides O) (Settings, error) {
	out := this
	if overrides == nil {
		overrides = O{}
	}
	if err := overrides.DecodeInto(&out, WithValidation()); err != nil {
		return this, fmt.Errorf("invalid settings: %w", err)
	}
	if _, err := hasher.Lookup(out.Burger.Algorithm); err != nil {
		return this, fmt.Errorf("invalid settings: %w", err)
	}
	return out, nil
}

// Options converts the burger settings into hashburger options.
func (this Settings) Options() (hashburger.Options, error) {
	b := this.Burger

	digest, err := hashburger.DigestFor(b.Algorithm)
	if err != nil {
		return hashburger.Options{}, err
	}

	opts := hashburger.Options{
		LeftBunLength:  b.LeftBunLength,
		CenterLength:   b.CenterLength,
		RightBunLength: b.RightBunLength,
		PaddingChar:    firstRune(b.PaddingChar),
		Digest:         digest,
	}
	if b.Graphemes {
		opts.Unit = hashburger.UnitGrapheme
	}

	if err := opts.Validate(); err != nil {
		return hashburger.Options{}, err
	}
	return opts, nil
}

// PathOptions converts the burger and path settings into hashburger path options.
func (this Settings) PathOptions() (hashburger.PathOptions, error) {
	opts, err := this.Options()
	if err != nil {
		return hashburger.PathOptions{}, err
	}

	popts := hashburger.PathOptions{
		Options:         opts,
		StartComponents: this.Path.StartComponents,
		EndComponents:   this.Path.EndComponents,
		Divider:         firstRune(this.Path.Divider),
	}
	if err := popts.Validate(); err != nil {
		return hashburger.PathOptions{}, err
	}
	return popts, nil
}

func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
