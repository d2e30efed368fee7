package recognition

import (
	"context"
	"errors"
)

// Result is a recognition backend's guess for one captured image.
type Result struct {
	Name                   string `json:"name"`
	Category               string `json:"category"`
	EstimatedShelfLifeDays int    `json:"estimated_shelf_life_days"`
}

// Provider turns a captured image into a food guess.
type Provider interface {
	Recognize(ctx context.Context, image []byte) (*Result, error)
}

// ErrUnavailable is returned while no recognition backend is deployed.
// Callers route the user back to manual entry.
var ErrUnavailable = errors.New("food recognition is not available yet")
