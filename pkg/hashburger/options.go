package hashburger

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/gur-shatz/hashburger/internal/hasher"
)

var validate = validator.New()

// DigestFunc reduces the patty bytes to a number. It must be deterministic.
type DigestFunc func(data []byte) uint64

// DigestFor returns the registered digest function with the given name.
// An empty name selects the default (xxhash).
func DigestFor(name string) (DigestFunc, error) {
	fn, err := hasher.Lookup(name)
	if err != nil {
		return nil, err
	}
	return DigestFunc(fn), nil
}

// Options controls the shape of a hashburger.
type Options struct {
	LeftBunLength  int `validate:"gte=0"`
	CenterLength   int `validate:"gte=0"`
	RightBunLength int `validate:"gte=0"`

	// PaddingChar right-pads short inputs up to Length(). 0 disables padding.
	PaddingChar rune

	// Digest hashes the patty. nil uses xxhash.
	Digest DigestFunc

	Unit Unit
}

// PathOptions controls how a path is split before each component is burgerized.
type PathOptions struct {
	Options

	StartComponents int  `validate:"gte=0"`
	EndComponents   int  `validate:"gte=0"`
	Divider         rune `validate:"required"`
}

// DefaultOptions returns the options hburger ships with: 4+2+4.
func DefaultOptions() Options {
	return Options{
		LeftBunLength:  4,
		CenterLength:   2,
		RightBunLength: 4,
	}
}

// DefaultPathOptions returns DefaultOptions with two components kept on each
// side of a ':' divider.
func DefaultPathOptions() PathOptions {
	return PathOptions{
		Options:         DefaultOptions(),
		StartComponents: 2,
		EndComponents:   2,
		Divider:         ':',
	}
}

// Length is the number of characters in a hashburger built with these options.
func (this Options) Length() int {
	return this.LeftBunLength + this.CenterLength + this.RightBunLength
}

// Validate reports options that Burgerize would reject.
func (this Options) Validate() error {
	if err := validate.Struct(this); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	if this.Unit != UnitRune && this.Unit != UnitGrapheme {
		return fmt.Errorf("invalid options: unknown unit %d", this.Unit)
	}
	if !this.lengthFits() {
		return fmt.Errorf("invalid options: %d+%d+%d overflows int",
			this.LeftBunLength, this.CenterLength, this.RightBunLength)
	}
	return nil
}

// lengthFits reports whether Length() is representable. Assumes
// non-negative lengths.
func (this Options) lengthFits() bool {
	return this.CenterLength <= math.MaxInt-this.LeftBunLength &&
		this.RightBunLength <= math.MaxInt-this.LeftBunLength-this.CenterLength
}

// Validate reports options that BurgerizePath would reject.
func (this PathOptions) Validate() error {
	if err := this.Options.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(this); err != nil {
		return fmt.Errorf("invalid path options: %w", err)
	}
	return nil
}

func (this Options) digest() DigestFunc {
	if this.Digest == nil {
		return DigestFunc(hasher.Default)
	}
	return this.Digest
}

// mustBeSane panics on options no caller should be able to produce after
// Validate.
func (this Options) mustBeSane() {
	if this.LeftBunLength < 0 || this.CenterLength < 0 || this.RightBunLength < 0 {
		panic(fmt.Sprintf("hashburger: negative length in %d+%d+%d",
			this.LeftBunLength, this.CenterLength, this.RightBunLength))
	}
	if !this.lengthFits() {
		panic(fmt.Sprintf("hashburger: length %d+%d+%d overflows int",
			this.LeftBunLength, this.CenterLength, this.RightBunLength))
	}
}

func (this PathOptions) mustBeSane() {
	this.Options.mustBeSane()
	if this.StartComponents < 0 || this.EndComponents < 0 {
		panic(fmt.Sprintf("hashburger: negative component count %d/%d",
			this.StartComponents, this.EndComponents))
	}
	if this.Divider == 0 {
		panic("hashburger: divider is not set")
	}
}
