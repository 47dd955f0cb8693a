package ucum

import (
	"sort"

	"golang.org/x/exp/slices"
)

// registry holds the compiled prefix and unit tables. It is populated once
// by registry_data.go's init() and never mutated afterward, so lookups are
// safe for concurrent use without locking.
var registry = struct {
	units    []UnitRecord
	prefixes []Prefix
}{}

// registerUnits is called by the generated registry_data.go to install the
// compiled unit table. It sorts the table by code so lookups can binary
// search.
func registerUnits(units []UnitRecord) {
	sort.Slice(units, func(i, j int) bool { return units[i].Code < units[j].Code })
	registry.units = units
}

// registerPrefixes is called by the generated registry_data.go to install
// the compiled prefix table, sorted longest symbol first (the order
// AllPrefixes returns). Lookups match symbols exactly, so this order does
// not affect resolveSymbol, which tries one-character prefixes first.
func registerPrefixes(prefixes []Prefix) {
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i].Symbol) != len(prefixes[j].Symbol) {
			return len(prefixes[i].Symbol) > len(prefixes[j].Symbol)
		}
		return prefixes[i].Symbol < prefixes[j].Symbol
	})
	registry.prefixes = prefixes
}

// FindUnit looks up a unit by its exact registered code (no prefix
// splitting). Most callers want resolveSymbol, which also tries prefixed
// forms; FindUnit is exposed for callers that already know the bare code.
func FindUnit(code string) (UnitRecord, bool) {
	units := registry.units
	i, ok := slices.BinarySearchFunc(units, code, func(u UnitRecord, target string) int {
		if u.Code < target {
			return -1
		}
		if u.Code > target {
			return 1
		}
		return 0
	})
	if !ok {
		return UnitRecord{}, false
	}
	return units[i], true
}

// FindPrefix looks up a prefix by its exact symbol.
func FindPrefix(symbol string) (Prefix, bool) {
	for _, p := range registry.prefixes {
		if p.Symbol == symbol {
			return p, true
		}
	}
	return Prefix{}, false
}

// AllUnits returns every registered unit, in code order. The returned slice
// must not be modified.
func AllUnits() []UnitRecord { return registry.units }

// AllPrefixes returns every registered prefix, longest symbol first. The
// returned slice must not be modified.
func AllPrefixes() []Prefix { return registry.prefixes }

// resolveSymbol resolves a unit code to its record, trying (in order): the
// bare code against the registry, then a one-character prefix against the
// remaining metric unit, then a two- or three-character prefix against the
// remaining metric unit. This mirrors the original evaluator's
// fast-path-then-slow-path prefix split: most codes either need no prefix
// or a single-character one, so those are tried before the rarer
// multi-character prefixes ("da" for deka, "Yi"/"Zi"-style binary prefixes
// are not part of UCUM but the shape generalizes).
func resolveSymbol(code string) (UnitRecord, Prefix, bool) {
	if u, ok := FindUnit(code); ok {
		return u, Prefix{}, true
	}

	if len(code) >= 2 {
		prefix := code[:1]
		rest := code[1:]
		if p, ok := FindPrefix(prefix); ok {
			if u, ok := FindUnit(rest); ok && u.Metric {
				return u, p, true
			}
		}
	}

	for plen := 2; plen <= 3; plen++ {
		if len(code) <= plen {
			continue
		}
		prefix := code[:plen]
		rest := code[plen:]
		if p, ok := FindPrefix(prefix); ok {
			if u, ok := FindUnit(rest); ok && u.Metric {
				return u, p, true
			}
		}
	}

	return UnitRecord{}, Prefix{}, false
}
