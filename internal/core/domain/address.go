package domain

// ResolvedAddress is the canonical form of a free-text address. Geometry is
// optional: an address may be accepted for delivery without map coordinates.
type ResolvedAddress struct {
	FormattedAddress string   `json:"formattedAddress"`
	Lat              *float64 `json:"lat,omitempty"`
	Lng              *float64 `json:"lng,omitempty"`
}

// HasGeometry reports whether the resolver returned coordinates.
func (a *ResolvedAddress) HasGeometry() bool {
	return a.Lat != nil && a.Lng != nil
}
