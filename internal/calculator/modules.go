package calculator

import "fmt"

// Module is a standard room size. Every module is a multiple of the 13.2 m² structural bay.
type Module string

const (
	ModuleS   Module = "M13.2"
	ModuleM   Module = "M26.4"
	ModuleL   Module = "M39.6"
	ModuleXL  Module = "M66.0"
	ModuleXXL Module = "M92.4"
	ModuleMax Module = "M105.6"
)

var moduleAreas = map[Module]float64{
	ModuleS:   13.2,
	ModuleM:   26.4,
	ModuleL:   39.6,
	ModuleXL:  66.0,
	ModuleXXL: 92.4,
	ModuleMax: 105.6,
}

// smallestModuleArea bounds the inverse search: no headcount adds less than this per two residents.
const smallestModuleArea = 13.2

// Area returns the floor area of one unit of the module in m², or 0 for an unknown module.
func (m Module) Area() float64 {
	return moduleAreas[m]
}

// Valid reports whether m is part of the catalog.
func (m Module) Valid() bool {
	_, ok := moduleAreas[m]
	return ok
}

// ParseModule resolves a module name such as "M26.4".
func ParseModule(name string) (Module, error) {
	m := Module(name)
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown module %q", ErrInvalidInput, name)
	}
	return m, nil
}

// Catalog returns a copy of the module catalog keyed by module name.
func Catalog() map[Module]float64 {
	out := make(map[Module]float64, len(moduleAreas))
	for m, area := range moduleAreas {
		out[m] = area
	}
	return out
}
