//go:build !linux

package gpio

import "errors"

// RealLine is not available on non-Linux platforms.
type RealLine struct{}

// NewRealLine returns an error on non-Linux platforms.
func NewRealLine(chipName string, offset int) (*RealLine, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// SetLevel is not implemented on non-Linux platforms.
func (r *RealLine) SetLevel(Level) error { return errors.New("gpio: not supported") }

// ReadLevel is not implemented on non-Linux platforms.
func (r *RealLine) ReadLevel() (Level, error) { return Low, errors.New("gpio: not supported") }

// Close is not implemented on non-Linux platforms.
func (r *RealLine) Close() error { return nil }
