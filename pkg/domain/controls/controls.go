// Package controls holds the static crosswalk between readiness dimensions
// and compliance-framework control identifiers. It is a pure lookup over
// in-source data; nothing here calls out or computes mappings.
package controls

// Framework identifies a supported compliance framework.
type Framework string

const (
	FrameworkISO27001  Framework = "ISO 27001"
	FrameworkNISTCSF   Framework = "NIST CSF"
	FrameworkOWASPASVS Framework = "OWASP ASVS"
)

// DefaultFrameworks returns the frameworks consulted when a caller does
// not name any.
func DefaultFrameworks() []Framework {
	return []Framework{FrameworkISO27001, FrameworkNISTCSF, FrameworkOWASPASVS}
}

// Strength describes how completely a control covers a dimension. Only
// full mappings are modeled today; Partial is reserved for a future
// catalog revision.
type Strength string

const (
	StrengthFull    Strength = "full"
	StrengthPartial Strength = "partial"
)

// Mapping associates a dimension with one framework control.
type Mapping struct {
	Framework   Framework `json:"framework"`
	ControlID   string    `json:"control_id"`
	Description string    `json:"description"`
	Strength    Strength  `json:"strength"`
}

// Control is one catalog entry: a framework control and the dimension
// keys it covers.
type Control struct {
	ID            string
	Description   string
	DimensionKeys []string
}

// Service answers dimension → control lookups over the static catalog.
type Service struct {
	catalogs map[Framework][]Control
}

// NewService builds a Service over the built-in control catalog.
func NewService() *Service {
	return &Service{catalogs: builtinControlCatalog()}
}

// MappingsForDimension returns every control mapped to the dimension key
// across the requested frameworks (all three by default). Mapping strength
// is always full in this catalog version.
func (s *Service) MappingsForDimension(dimensionKey string, frameworks ...Framework) []Mapping {
	if len(frameworks) == 0 {
		frameworks = DefaultFrameworks()
	}

	var mappings []Mapping
	for _, fw := range frameworks {
		for _, c := range s.catalogs[fw] {
			if containsKey(c.DimensionKeys, dimensionKey) {
				mappings = append(mappings, Mapping{
					Framework:   fw,
					ControlID:   c.ID,
					Description: c.Description,
					Strength:    StrengthFull,
				})
			}
		}
	}
	return mappings
}

// CoverageSummary returns, per framework, how many controls map to the
// dimension. Used for reporting, not generation.
func (s *Service) CoverageSummary(dimensionKey string) map[Framework]int {
	summary := make(map[Framework]int, len(s.catalogs))
	for fw, catalog := range s.catalogs {
		count := 0
		for _, c := range catalog {
			if containsKey(c.DimensionKeys, dimensionKey) {
				count++
			}
		}
		summary[fw] = count
	}
	return summary
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
