package domain

// Country enumerates the markets the geo classifier distinguishes.
type Country string

const (
	SouthAfrica Country = "south-africa"
	Zimbabwe    Country = "zimbabwe"
)

// LocationTag is the classifier's best guess at the place an article concerns.
// City and Region are canonical title-case ("Cape Town", "Kwazulu-Natal") and
// empty when no gazetteer entry of that tier matched.
//
// LowConfidence is set when no gazetteer entry matched at all and the tag is
// the primary-market fallback rather than an evidence-based classification.
// Callers that need to distinguish "classified" from "defaulted" should check
// it; legacy callers can ignore the field.
type LocationTag struct {
	Country       Country `json:"country"`
	City          string  `json:"city,omitempty"`
	Region        string  `json:"region,omitempty"`
	LowConfidence bool    `json:"lowConfidence,omitempty"`
}
