package gpio

// FakeLine is a test double that records writes and serves reads from a
// settable level.
type FakeLine struct {
	// Level is the current line level, also returned by ReadLevel.
	Level Level

	// Writes records every level passed to SetLevel, in order.
	Writes []Level

	// Closed tracks if Close was called.
	Closed bool

	// SetError, if set, will be returned by SetLevel.
	SetError error

	// ReadError, if set, will be returned by ReadLevel.
	ReadError error
}

// NewFakeLine creates a FakeLine resting LOW.
func NewFakeLine() *FakeLine { return &FakeLine{} }

// SetLevel records the write and updates the level.
func (f *FakeLine) SetLevel(l Level) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.Level = l
	f.Writes = append(f.Writes, l)
	return nil
}

// ReadLevel returns the current level.
func (f *FakeLine) ReadLevel() (Level, error) {
	if f.ReadError != nil {
		return Low, f.ReadError
	}
	return f.Level, nil
}

// Close marks the line as closed.
func (f *FakeLine) Close() error {
	f.Closed = true
	return nil
}

// Force overrides the line level without recording a write, simulating
// out-of-band manipulation of the pin.
func (f *FakeLine) Force(l Level) { f.Level = l }
