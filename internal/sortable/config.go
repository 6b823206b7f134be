package sortable

// Config configures a Sortable. Build it from DefaultConfig and adjust;
// it is merged once at construction and immutable for the controller's
// lifetime.
type Config struct {
	// Items selects the draggable elements inside the container.
	Items string

	// Handle, if set, restricts the pickup trigger to a descendant of an
	// item matching this selector.
	Handle string

	// Enabled gates pickups. A disabled Sortable still installs its
	// listener on Init but refuses every gesture.
	Enabled bool

	// ScrollMargin is how many rows from the container's content edge
	// the pointer may get before a drag starts autoscrolling. Zero
	// disables autoscroll.
	ScrollMargin int

	// ScrollStep is how many rows each autoscroll tick moves.
	ScrollStep int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Items:        "item",
		Enabled:      true,
		ScrollMargin: 1,
		ScrollStep:   1,
	}
}

// merged fills invalid or missing fields from the defaults.
func merged(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Items == "" {
		cfg.Items = def.Items
	}
	if cfg.ScrollMargin < 0 {
		cfg.ScrollMargin = def.ScrollMargin
	}
	if cfg.ScrollStep <= 0 {
		cfg.ScrollStep = def.ScrollStep
	}
	return cfg
}
