// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import "github.com/taibuivan/artistly/pkg/rupee"

// FeaturedCategory is a tile on the landing page linking into the directory.
type FeaturedCategory struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	PriceInRupees int    `json:"price_in_rupees"`
	DisplayPrice  string `json:"display_price"`
	ImageURL      string `json:"image_url"`
	Href          string `json:"href"`
}

var featured = []FeaturedCategory{
	{
		Title:         "Singers",
		Description:   "Solo singers, singing guitarists, singing pianists, unique original artists and much more!",
		PriceInRupees: 15000,
		ImageURL:      "/images/categories/singers.jpg",
		Href:          "/artists?category=singers",
	},
	{
		Title:         "Dancers",
		Description:   "Professional dancers for all styles - contemporary, hip-hop, ballroom, and cultural performances.",
		PriceInRupees: 20000,
		ImageURL:      "/images/categories/dancers.jpg",
		Href:          "/artists?category=dancers",
	},
	{
		Title:         "Speakers",
		Description:   "Motivational speakers, keynote presenters, and industry experts for your events.",
		PriceInRupees: 35000,
		ImageURL:      "/images/categories/speakers.jpg",
		Href:          "/artists?category=speakers",
	},
	{
		Title:         "DJs",
		Description:   "Pop, Rock, Jazz, Electronic, Soul & Motown... you name it - we've got it!",
		PriceInRupees: 25000,
		ImageURL:      "/images/categories/djs.jpg",
		Href:          "/artists?category=djs",
	},
}

// Featured returns the landing page category tiles with formatted prices.
func Featured() []FeaturedCategory {
	out := make([]FeaturedCategory, len(featured))
	for i, c := range featured {
		c.DisplayPrice = rupee.FormatFrom(c.PriceInRupees)
		out[i] = c
	}
	return out
}
