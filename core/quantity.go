package core

// quantity is the canonical Quantity value used by station declarations and
// tests. Instrument drivers may supply their own implementations.
type quantity struct {
	name     string
	unit     string
	settable bool
	gettable bool
}

func (q quantity) Name() string   { return q.name }
func (q quantity) Unit() string   { return q.unit }
func (q quantity) Settable() bool { return q.settable }
func (q quantity) Gettable() bool { return q.gettable }

// NewQuantity builds a Quantity with explicit capabilities.
func NewQuantity(name, unit string, settable, gettable bool) Quantity {
	return quantity{name: name, unit: unit, settable: settable, gettable: gettable}
}

// Settable builds a drivable (and readable) quantity, e.g. a voltage output.
func Settable(name, unit string) Quantity {
	return quantity{name: name, unit: unit, settable: true, gettable: true}
}

// Gettable builds a read-only quantity, e.g. a sensed current.
func Gettable(name, unit string) Quantity {
	return quantity{name: name, unit: unit, gettable: true}
}
