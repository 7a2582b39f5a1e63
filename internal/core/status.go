package core

import "strings"

// StatusNormalizer maps free-text status values from the batches sheet onto
// a fixed ordered scale. The scale's position defines progress: index 0 is
// the least progress, the last index means ready for pickup.
type StatusNormalizer struct {
	scale []string

	// OnUnrecognized, when set, is called with the cleaned status text
	// whenever it matches no scale entry. The caller decides how to surface
	// the diagnostic; unrecognized text is never an error.
	OnUnrecognized func(status string)
}

// NewStatusNormalizer creates a normalizer over the given ordered scale.
func NewStatusNormalizer(scale []string) *StatusNormalizer {
	return &StatusNormalizer{scale: scale}
}

// CleanValue collapses non-breaking spaces to regular spaces, squeezes runs
// of whitespace to a single space, and trims. Sheet cells edited by hand
// frequently carry NBSP and doubled spaces that would defeat comparison.
func CleanValue(value string) string {
	value = strings.ReplaceAll(value, "\u00a0", " ")
	return strings.Join(strings.Fields(value), " ")
}

// Normalize returns the canonical scale entry (with the scale's exact
// casing) matching the external status case-insensitively, or "" when the
// input is empty or matches nothing. Normalize is idempotent: feeding its
// output back in returns the same value.
func (n *StatusNormalizer) Normalize(external string) string {
	cleaned := CleanValue(external)
	if cleaned == "" {
		return ""
	}
	for _, s := range n.scale {
		if strings.EqualFold(CleanValue(s), cleaned) {
			return s
		}
	}
	if n.OnUnrecognized != nil {
		n.OnUnrecognized(cleaned)
	}
	return ""
}

// Stage returns the zero-based position of a canonical status on the scale.
// ok is false for "" and for any value not on the scale.
func (n *StatusNormalizer) Stage(status string) (stage int, ok bool) {
	for i, s := range n.scale {
		if s == status {
			return i, true
		}
	}
	return 0, false
}

// Percent converts a canonical status to a progress percentage for display:
// (stage+1)/len(scale)*100, or 0 when the status is unknown.
func (n *StatusNormalizer) Percent(status string) float64 {
	stage, ok := n.Stage(status)
	if !ok {
		return 0
	}
	return float64(stage+1) / float64(len(n.scale)) * 100
}

// Scale returns the ordered scale, least progress first.
func (n *StatusNormalizer) Scale() []string {
	return n.scale
}
