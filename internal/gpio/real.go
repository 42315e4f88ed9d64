//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealLine drives a GPIO line on actual hardware using the Linux GPIO
// character device.
type RealLine struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// NewRealLine requests the given line offset as an output, driven LOW.
func NewRealLine(chipName string, offset int) (*RealLine, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %q: %w", chipName, err)
	}

	line, err := chip.RequestLine(offset, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request charge line %d: %w", offset, err)
	}

	return &RealLine{chip: chip, line: line}, nil
}

// SetLevel drives the line.
func (r *RealLine) SetLevel(l Level) error {
	if err := r.line.SetValue(int(l)); err != nil {
		return fmt.Errorf("set charge line %v: %w", l, err)
	}
	return nil
}

// ReadLevel reads the value back from the line. For an output request the
// kernel reports the value on the line, which catches a line that was
// reconfigured or pulled down out-of-band.
func (r *RealLine) ReadLevel() (Level, error) {
	v, err := r.line.Value()
	if err != nil {
		return Low, fmt.Errorf("read charge line: %w", err)
	}
	if v != 0 {
		return High, nil
	}
	return Low, nil
}

// Close drives the line LOW and releases it, so a process exit never
// leaves the capacitor charging.
func (r *RealLine) Close() error {
	var errs []error

	if r.line != nil {
		if err := r.line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("drive line low: %w", err))
		}
		if err := r.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close line: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
