package enum

import "database/sql/driver"

// TemplateVariant selects one of the interchangeable visual arrangements of an
// invoice. Variants differ only in layout and per-page item capacity, never in
// data semantics.
type TemplateVariant string

const (
	TemplateClassic TemplateVariant = "classic"
	TemplateModern  TemplateVariant = "modern"
	TemplateMinimal TemplateVariant = "minimal"
)

// Per-variant page capacities. Fixed layout constants tuned for the A4 print
// sheets; line items never re-flow by measured content height, so a very long
// description can visually overflow its page without forcing a break.
const (
	classicItemsPerPage = 12
	modernItemsPerPage  = 10
	minimalItemsPerPage = 15
)

// ItemsPerPage returns how many line items fit on one page of this variant.
// Unknown variants fall back to the classic capacity.
func (v TemplateVariant) ItemsPerPage() int {
	switch v {
	case TemplateModern:
		return modernItemsPerPage
	case TemplateMinimal:
		return minimalItemsPerPage
	default:
		return classicItemsPerPage
	}
}

// Valid reports whether v is one of the known variants.
func (v TemplateVariant) Valid() bool {
	switch v {
	case TemplateClassic, TemplateModern, TemplateMinimal:
		return true
	}
	return false
}

func (v TemplateVariant) String() string {
	return string(v)
}

func (v TemplateVariant) Value() (driver.Value, error) {
	return string(v), nil
}

func (v *TemplateVariant) Scan(value interface{}) error {
	if value == nil {
		*v = TemplateClassic
		return nil
	}
	switch s := value.(type) {
	case string:
		*v = TemplateVariant(s)
	case []byte:
		*v = TemplateVariant(s)
	}
	if !v.Valid() {
		*v = TemplateClassic
	}
	return nil
}
