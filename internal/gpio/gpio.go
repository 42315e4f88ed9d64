// Package gpio drives the single charge line with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Level is a digital line level.
type Level int

const (
	Low  Level = 0
	High Level = 1
)

func (l Level) String() string {
	if l == High {
		return "HIGH"
	}
	return "LOW"
}

// Line controls one digital output.
type Line interface {
	// SetLevel drives the line to the given level.
	SetLevel(l Level) error

	// ReadLevel returns the level currently on the line, not the last
	// commanded value.
	ReadLevel() (Level, error)

	// Close releases line resources.
	Close() error
}
