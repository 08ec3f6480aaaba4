package analyzer

import "fmt"

// NewScorer creates a scorer based on the specified variant.
func NewScorer(variant string) (Scorer, error) {
	switch variant {
	case "sobel", "":
		return NewSobelScorer(), nil
	case "ai":
		return nil, fmt.Errorf("AI scorer not yet implemented")
	default:
		return nil, fmt.Errorf("unknown scorer variant: %s", variant)
	}
}
