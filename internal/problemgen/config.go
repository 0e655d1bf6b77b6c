package problemgen

// Config controls the behavior of a Generator.
type Config struct {
	// Seed fixes the operand sequence so runs are reproducible.
	// Zero seeds from the clock.
	Seed uint64

	// MaxDisplayBlocks is the most unit blocks a renderer is asked to draw
	// for addition, subtraction and division. Larger quantities get a
	// scaled Display layout.
	MaxDisplayBlocks int

	// MaxGroupItems caps the items drawn per group for multiplication.
	MaxGroupItems int

	// MaxCountingIcons caps the icons in a counting problem's visual row.
	MaxCountingIcons int
}

// DefaultConfig returns a Config with the standard display limits.
func DefaultConfig() Config {
	return Config{
		MaxDisplayBlocks: 100,
		MaxGroupItems:    20,
		MaxCountingIcons: 15,
	}
}

// withDefaults fills zero limits from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MaxDisplayBlocks <= 0 {
		c.MaxDisplayBlocks = def.MaxDisplayBlocks
	}
	if c.MaxGroupItems <= 0 {
		c.MaxGroupItems = def.MaxGroupItems
	}
	if c.MaxCountingIcons <= 0 {
		c.MaxCountingIcons = def.MaxCountingIcons
	}
	return c
}
