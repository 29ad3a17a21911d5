package comparison

// DefaultMapping folds the reference proposal's line items onto the computed program.
// Spaces without an entry fall back to an exact category and name match.
var DefaultMapping = Mapping{
	"Study lounge":     {"Floor study room & lounge", "Basement lounge"},
	"Shared kitchen":   {"Floor mini kitchen"},
	"Laundry":          {"Laundry & drying room"},
	"Parcel & storage": {"Parcel room", "Printer room", "Prayer room"},
	"Admin lounge":     {"Administration (subtotal)"},
}

// Clone returns a deep copy of m.
func (m Mapping) Clone() Mapping {
	if m == nil {
		return nil
	}
	out := make(Mapping, len(m))
	for name, refs := range m {
		out[name] = append([]string(nil), refs...)
	}
	return out
}
