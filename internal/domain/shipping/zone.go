package shipping

import (
	"fmt"
	"strings"

	"github.com/resale/backend/internal/domain/shared"
)

// Zone identifies a group of destination countries sharing one rate ladder
type Zone int

// Country describes one destination in the zone map
type Country struct {
	Code string
	Name string
	Zone Zone
}

// ZoneMap maps ISO 3166-1 alpha-2 country codes to shipping zones.
// Immutable after construction.
type ZoneMap struct {
	countries   map[string]Country
	defaultZone Zone
	hasDefault  bool
}

// ZoneMapOption configures a ZoneMap
type ZoneMapOption func(*ZoneMap)

// WithDefaultZone makes unknown countries resolve to the given zone instead
// of failing with ErrUnknownDestination. The fallback must be explicit.
func WithDefaultZone(zone Zone) ZoneMapOption {
	return func(m *ZoneMap) {
		m.defaultZone = zone
		m.hasDefault = true
	}
}

// NewZoneMap builds a ZoneMap from country entries
func NewZoneMap(countries []Country, opts ...ZoneMapOption) (*ZoneMap, error) {
	if len(countries) == 0 {
		return nil, fmt.Errorf("zone map has no countries")
	}
	m := &ZoneMap{countries: make(map[string]Country, len(countries))}
	for _, opt := range opts {
		opt(m)
	}
	for _, c := range countries {
		code := strings.ToUpper(strings.TrimSpace(c.Code))
		if len(code) != 2 {
			return nil, fmt.Errorf("invalid country code %q", c.Code)
		}
		if existing, ok := m.countries[code]; ok && existing.Zone != c.Zone {
			return nil, fmt.Errorf("country %s mapped to both zone %d and zone %d", code, existing.Zone, c.Zone)
		}
		c.Code = code
		m.countries[code] = c
	}
	return m, nil
}

// Zone resolves the shipping zone for a country code, case-insensitively.
// Unknown countries return ErrUnknownDestination unless a default zone was
// configured.
func (m *ZoneMap) Zone(countryCode string) (Zone, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if c, ok := m.countries[code]; ok {
		return c.Zone, nil
	}
	if m.hasDefault {
		return m.defaultZone, nil
	}
	return 0, shared.ErrUnknownDestination
}

// Country returns the full country entry for a code
func (m *ZoneMap) Country(countryCode string) (Country, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if c, ok := m.countries[code]; ok {
		return c, nil
	}
	return Country{}, shared.ErrUnknownDestination
}

// Size returns the number of mapped countries
func (m *ZoneMap) Size() int {
	return len(m.countries)
}
