package sketchy

import (
	"errors"
	"fmt"
)

// Configuration errors. The core assumes parameters were validated at the
// configuration boundary and never reports these itself.
var (
	ErrInvalidBand     = errors.New("sketchy: min length must be non-negative and below max length")
	ErrInvalidStroke   = errors.New("sketchy: stroke widths must be non-negative with min <= max")
	ErrInvalidDivision = errors.New("sketchy: division amount must be positive")
	ErrInvalidOpacity  = errors.New("sketchy: opacity must be within [0, 1]")
)

// DivisionMode selects how a path is divided into sample points.
type DivisionMode uint8

const (
	// ByLength places samples a fixed arc length apart.
	ByLength DivisionMode = iota

	// ByCount divides each path into a fixed number of equal steps.
	ByCount
)

// String returns the configuration name of the mode.
func (m DivisionMode) String() string {
	switch m {
	case ByLength:
		return "Length"
	case ByCount:
		return "Number"
	default:
		return "Unknown"
	}
}

// ParseDivisionMode parses the configuration name of a DivisionMode.
func ParseDivisionMode(s string) (DivisionMode, error) {
	switch s {
	case "Length":
		return ByLength, nil
	case "Number":
		return ByCount, nil
	}
	return 0, fmt.Errorf("sketchy: unknown division mode %q", s)
}

// DivisionParams controls path sampling.
type DivisionParams struct {
	Mode   DivisionMode
	Amount float64
}

// Validate reports whether the division amount is usable.
func (p DivisionParams) Validate() error {
	if !(p.Amount > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDivision, p.Amount)
	}
	return nil
}

// ConnectionParams is the distance band and stroke range for connections.
type ConnectionParams struct {
	MinLength      float64
	MaxLength      float64
	MinStrokeWidth float64
	MaxStrokeWidth float64
}

// Validate checks MinLength < MaxLength, MinStrokeWidth <= MaxStrokeWidth
// and that every value is non-negative.
func (p ConnectionParams) Validate() error {
	if p.MinLength < 0 || !(p.MinLength < p.MaxLength) {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidBand, p.MinLength, p.MaxLength)
	}
	if p.MinStrokeWidth < 0 || !(p.MinStrokeWidth <= p.MaxStrokeWidth) {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidStroke, p.MinStrokeWidth, p.MaxStrokeWidth)
	}
	return nil
}

// OpacityScope selects where generated opacity is applied.
type OpacityScope uint8

const (
	// PerSegment sets the opacity on every generated line.
	PerSegment OpacityScope = iota

	// PerGroup sets the opacity once on the group of a generation.
	PerGroup
)

// String returns the configuration name of the scope.
func (s OpacityScope) String() string {
	switch s {
	case PerSegment:
		return "Path"
	case PerGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// ParseOpacityScope parses the configuration name of an OpacityScope.
func ParseOpacityScope(s string) (OpacityScope, error) {
	switch s {
	case "Path":
		return PerSegment, nil
	case "Group":
		return PerGroup, nil
	}
	return 0, fmt.Errorf("sketchy: unknown opacity scope %q", s)
}

// StyleParams controls how generated lines are styled.
type StyleParams struct {
	Opacity float64
	Scope   OpacityScope
}

// Validate reports whether Opacity lies within [0, 1].
func (p StyleParams) Validate() error {
	if !(p.Opacity >= 0 && p.Opacity <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidOpacity, p.Opacity)
	}
	return nil
}
