package appraise

import "github.com/jenshnielsen/stationgraph/core"

// Quantity names that mark permanently wired sources and meters.
var (
	constantSourceNames = map[string]struct{}{
		"ground":       {},
		"ground_force": {},
		"highz":        {},
		"float":        {},
	}
	constantMeterNames = map[string]struct{}{
		"ground_sense": {},
	}
)

// SourceCountOf counts the settable quantities of a node.
func SourceCountOf(n core.Node) int {
	count := 0
	for _, q := range n.Quantities() {
		if q.Settable() {
			count++
		}
	}

	return count
}

// MeterCountOf counts the gettable quantities of a node, provided none of
// its quantities is settable; a node that can drive anything is not a meter.
func MeterCountOf(n core.Node) int {
	count := 0
	for _, q := range n.Quantities() {
		if q.Settable() {
			return 0
		}
		if q.Gettable() {
			count++
		}
	}

	return count
}

// NodeIsSource reports whether the node can drive at least one quantity.
func NodeIsSource(n core.Node) bool { return SourceCountOf(n) > 0 }

// NodeIsMeter reports whether the node is a pure readout.
func NodeIsMeter(n core.Node) bool { return MeterCountOf(n) > 0 }

// NodeHasUnit matches nodes owning a quantity in one of the given units.
// An empty unit list, or an empty string among the units, matches any node.
func NodeHasUnit(units ...string) Predicate {
	anyUnit := len(units) == 0
	wanted := make(map[string]struct{}, len(units))
	for _, u := range units {
		if u == "" {
			anyUnit = true

			continue
		}
		wanted[u] = struct{}{}
	}

	return func(n core.Node) bool {
		if anyUnit {
			return true
		}
		for _, q := range n.Quantities() {
			if _, ok := wanted[q.Unit()]; ok {
				return true
			}
		}

		return false
	}
}

// NodeHasQuantityNamed matches nodes owning a quantity with one of the
// given short names.
func NodeHasQuantityNamed(names ...string) Predicate {
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	return func(n core.Node) bool {
		for _, q := range n.Quantities() {
			if _, ok := wanted[q.Name()]; ok {
				return true
			}
		}

		return false
	}
}

// NodeIsConstantSource reports whether any quantity carries a constant
// source name (permanently wired ground, float, highz).
func NodeIsConstantSource(n core.Node) bool {
	for _, q := range n.Quantities() {
		if _, ok := constantSourceNames[q.Name()]; ok {
			return true
		}
	}

	return false
}

// NodeIsConstantMeter reports whether any quantity carries a constant
// meter name.
func NodeIsConstantMeter(n core.Node) bool {
	for _, q := range n.Quantities() {
		if _, ok := constantMeterNames[q.Name()]; ok {
			return true
		}
	}

	return false
}

// NodeIsSourceNamed matches drivable nodes owning a quantity with the given
// short name and unit ("" matches any unit).
func NodeIsSourceNamed(name, unit string) Predicate {
	return And(NodeHasQuantityNamed(name), NodeIsSource, NodeHasUnit(unit))
}

// NodeIsMeterNamed matches pure readout nodes owning a quantity with the
// given short name and unit ("" matches any unit).
func NodeIsMeterNamed(name, unit string) Predicate {
	return And(NodeHasQuantityNamed(name), NodeIsMeter, NodeHasUnit(unit))
}

// NodeIsGeneralGround matches drivable ground nodes in the given unit.
func NodeIsGeneralGround(unit string) Predicate {
	return NodeIsSourceNamed("ground", unit)
}

// NodeIsGround matches drivable voltage grounds.
var NodeIsGround = NodeIsGeneralGround("V")
