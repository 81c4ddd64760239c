// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package artist serves the public artist directory.

The catalogue is small and read-only, so every listing loads the full set
from the [Repository] and narrows it in memory with [Apply]. The same
predicate therefore holds whether the data comes from the embedded JSON or
from PostgreSQL.
*/
package artist

import "github.com/taibuivan/artistly/pkg/rupee"

// # Domain Entities

// Artist is a bookable performer listed in the directory.
type Artist struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`

	// Location is the display form, usually "City, State".
	Location string `json:"location"`
	City     string `json:"city"`
	State    string `json:"state"`

	// Booking fee window in whole rupees. PriceMin never exceeds PriceMax.
	PriceMin     int    `json:"price_min"`
	PriceMax     int    `json:"price_max"`
	DisplayPrice string `json:"display_price"`

	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Image     string   `json:"image,omitempty"`
	Languages []string `json:"languages"`
	Bio       string   `json:"bio"`
	Verified  bool     `json:"verified"`
}

// FormatPrice fills DisplayPrice from the fee window.
func (a *Artist) FormatPrice() {
	a.DisplayPrice = rupee.FormatRange(a.PriceMin, a.PriceMax)
}

// # Field Names

const (
	FieldCategory = "category"
	FieldLocation = "location"
	FieldSearch   = "search"
	FieldPriceMin = "price_min"
	FieldPriceMax = "price_max"
)

// # Price Window

const (
	// DefaultPriceMin is the lower bound of the unfiltered price window.
	DefaultPriceMin = 0

	// DefaultPriceMax is the upper bound of the unfiltered price window.
	DefaultPriceMax = 75000
)
