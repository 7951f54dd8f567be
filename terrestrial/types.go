// SPDX-License-Identifier: MIT

package terrestrial

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlsofa/nutation"
)

// Method selects how Earth rotation is separated from precession-nutation.
type Method int

const (
	// CIOBased uses the celestial intermediate origin and the Earth rotation
	// angle.
	CIOBased Method = iota
	// EquinoxBased uses the true equinox of date and Greenwich apparent
	// sidereal time.
	EquinoxBased
)

// Methods lists every defined Method in declaration order.
var Methods = []Method{CIOBased, EquinoxBased}

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case CIOBased:
		return "cio"
	case EquinoxBased:
		return "equinox"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts "cio" or "equinox", case-insensitively.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Methods {
		if m.String() == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}

// Defaults for Matrix.
const (
	// DefaultModel is the nutation model used when none is given.
	DefaultModel = nutation.IAU2006A

	// DefaultMethod is the CIO-based factoring recommended since IAU 2006.
	DefaultMethod = CIOBased

	// DefaultTIOLocator includes s′ in the polar-motion matrix.
	DefaultTIOLocator = true
)

// Option mutates Options. Options are applied in order; later ones win.
type Option func(*Options)

// Options is the effective configuration of Matrix.
type Options struct {
	Model      nutation.Model
	Method     Method
	TIOLocator bool
}

// DefaultOptions returns the configuration Matrix uses with no options.
func DefaultOptions() Options {
	return Options{
		Model:      DefaultModel,
		Method:     DefaultMethod,
		TIOLocator: DefaultTIOLocator,
	}
}

// WithModel selects the nutation model.
func WithModel(m nutation.Model) Option {
	return func(o *Options) { o.Model = m }
}

// WithMethod selects the CIO-based or equinox-based factoring.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithTIOLocator toggles s′ in the polar-motion matrix. The 2000B
// pipeline conventionally omits it.
func WithTIOLocator(on bool) Option {
	return func(o *Options) { o.TIOLocator = on }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
