package mif

// LoadOptions configures reading a layer.
type LoadOptions struct {
	// AttributesOnly skips the geometry stream; every record gets a nil
	// geometry.
	AttributesOnly bool

	// Logger receives load progress and failures. Nil disables logging.
	Logger *Logger
}

// DefaultLoadOptions returns default options.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{}
}

// Default fraction digits used when DumpOptions leaves a precision unset.
const (
	DefaultCoordPrecision   = 6
	DefaultDecimalPrecision = 6
)

// DumpOptions configures writing a layer. The zero value is ready to use.
type DumpOptions struct {
	// CoordPrecision is the number of fraction digits written for each
	// coordinate. Zero selects DefaultCoordPrecision and a negative value
	// writes the shortest exact form.
	CoordPrecision int

	// DecimalPrecision is the number of fraction digits written for
	// decimal and float attribute columns. Zero selects
	// DefaultDecimalPrecision and a negative value writes the shortest
	// exact form.
	DecimalPrecision int

	Logger *Logger
}

// DefaultDumpOptions returns default options.
func DefaultDumpOptions() DumpOptions {
	return DumpOptions{
		CoordPrecision:   DefaultCoordPrecision,
		DecimalPrecision: DefaultDecimalPrecision,
	}
}

func (o DumpOptions) withDefaults() DumpOptions {
	if o.CoordPrecision == 0 {
		o.CoordPrecision = DefaultCoordPrecision
	}
	if o.DecimalPrecision == 0 {
		o.DecimalPrecision = DefaultDecimalPrecision
	}
	return o
}
