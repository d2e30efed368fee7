package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FoodItem is one tracked food entry. Compartment is a weak reference:
// it is matched by string against the current configuration and may point
// at a compartment that no longer exists (the item is then orphaned, not
// deleted).
type FoodItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Quantity    int       `json:"quantity"`
	Compartment string    `json:"compartment"`
	DateAdded   time.Time `json:"dateAdded"`
	ExpiryDate  time.Time `json:"expiryDate"`
}

// NewFoodID mints an opaque food identifier from the current time plus a
// random fragment, so collisions are practically impossible without any
// global coordination.
func NewFoodID() string {
	return fmt.Sprintf("food-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// NewFoodItem builds a food entry, minting its identifier and filling in
// whatever the caller left zero: dateAdded defaults to now, expiry to the
// category's default shelf life, quantity is clamped to at least 1.
func NewFoodItem(name string, cat Category, quantity int, compartment string, dateAdded, expiry time.Time) FoodItem {
	if dateAdded.IsZero() {
		dateAdded = time.Now().UTC()
	}
	if expiry.IsZero() {
		expiry = DefaultExpiry(cat, dateAdded)
	}
	if quantity < 1 {
		quantity = 1
	}
	return FoodItem{
		ID:          NewFoodID(),
		Name:        name,
		Category:    cat,
		Quantity:    quantity,
		Compartment: compartment,
		DateAdded:   dateAdded,
		ExpiryDate:  expiry,
	}
}

// ExpiryState classifies how close a food item is to its expiry date
type ExpiryState string

const (
	// Expiry states
	ExpiryFresh   ExpiryState = "fresh"
	ExpirySoon    ExpiryState = "expiring"
	ExpiryExpired ExpiryState = "expired"
)

// Items expiring within this many days count as "expiring".
const expiringSoonDays = 2

// ExpiryStatus classifies an item relative to now. An item whose expiry
// has passed is expired; one expiring within the soon-window (including
// today) is expiring; everything else is fresh.
func ExpiryStatus(item FoodItem, now time.Time) ExpiryState {
	if item.ExpiryDate.Before(now) {
		return ExpiryExpired
	}
	if !item.ExpiryDate.After(now.AddDate(0, 0, expiringSoonDays)) {
		return ExpirySoon
	}
	return ExpiryFresh
}
