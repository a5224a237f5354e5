// Package clipper turns pointer and touch gestures into a constrained clip rectangle.
package clipper

import (
	"errors"
	"fmt"

	"github.com/frudas24/boxclip/internal/geom"
)

const (
	defaultScale        = 1
	defaultMinWidth     = 60
	defaultMinHeight    = 60
	defaultHandleRadius = 20
)

var (
	// ErrInvalidRatio is returned for a negative aspect ratio.
	ErrInvalidRatio = errors.New("aspect ratio must be >= 0")
	// ErrInvalidMinSize is returned for a negative minimum width or height.
	ErrInvalidMinSize = errors.New("minimum size must be >= 0")
	// ErrInvalidRadius is returned for a negative handle radius.
	ErrInvalidRadius = errors.New("handle radius must be >= 0")
	// ErrInvalidScale is returned for a scale factor that is not positive.
	ErrInvalidScale = errors.New("scale must be > 0")
	// ErrInvalidRotation is returned for a rotation outside {0,-90,-180,-270}.
	ErrInvalidRotation = errors.New("rotation must be 0, -90, -180 or -270")
	// ErrGestureActive is returned when reconfiguring while a gesture is in flight.
	ErrGestureActive = errors.New("gesture in progress")
)

// Config holds the constraints applied to every gesture.
type Config struct {
	// Scale is the display zoom of the image. Geometry is computed in
	// container coordinates, so it is carried for callers only.
	Scale    float64       `json:"scale"`
	Rotation geom.Rotation `json:"rotation"`
	// AspectRatio is height/width; 0 leaves the shape unconstrained.
	AspectRatio  float64 `json:"ratio"`
	MinWidth     float64 `json:"minWidth"`
	MinHeight    float64 `json:"minHeight"`
	HandleRadius float64 `json:"handleRadius"`
}

// DefaultConfig returns the unconstrained configuration with a 60x60 floor.
func DefaultConfig() Config {
	return Config{
		Scale:        defaultScale,
		Rotation:     geom.Rotate0,
		MinWidth:     defaultMinWidth,
		MinHeight:    defaultMinHeight,
		HandleRadius: defaultHandleRadius,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.AspectRatio < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRatio, c.AspectRatio)
	}
	if c.MinWidth < 0 || c.MinHeight < 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidMinSize, c.MinWidth, c.MinHeight)
	}
	if c.HandleRadius < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, c.HandleRadius)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidScale, c.Scale)
	}
	if !c.Rotation.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRotation, c.Rotation)
	}
	return nil
}

// floors returns the minimum width and height that keep both floors
// satisfied once one dimension is derived from the other through ratio.
func (c Config) floors(ratio float64) (float64, float64) {
	if ratio <= 0 {
		return c.MinWidth, c.MinHeight
	}
	return max(c.MinWidth, c.MinHeight/ratio), max(c.MinHeight, c.MinWidth*ratio)
}
