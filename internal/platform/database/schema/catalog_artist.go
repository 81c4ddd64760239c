// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns used by the PostgreSQL
// repositories, so SQL text never hard-codes identifiers.
package schema

// CatalogArtistTable represents the 'catalog.artist' table
type CatalogArtistTable struct {
	Table     string
	ID        string
	Name      string
	Category  string
	Location  string
	City      string
	State     string
	PriceMin  string
	PriceMax  string
	Rating    string
	Reviews   string
	Image     string
	Languages string
	Bio       string
	Verified  string
}

// CatalogArtist is the schema definition for catalog.artist
var CatalogArtist = CatalogArtistTable{
	Table:     "catalog.artist",
	ID:        "id",
	Name:      "name",
	Category:  "category",
	Location:  "location",
	City:      "city",
	State:     "state",
	PriceMin:  "pricemin",
	PriceMax:  "pricemax",
	Rating:    "rating",
	Reviews:   "reviews",
	Image:     "image",
	Languages: "languages",
	Bio:       "bio",
	Verified:  "verified",
}

// Columns returns every column in scan order.
func (t CatalogArtistTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Category, t.Location, t.City, t.State, t.PriceMin, t.PriceMax,
		t.Rating, t.Reviews, t.Image, t.Languages, t.Bio, t.Verified,
	}
}
