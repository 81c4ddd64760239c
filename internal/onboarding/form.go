// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/validate"
	"github.com/taibuivan/artistly/pkg/rupee"
	"github.com/taibuivan/artistly/pkg/slice"
)

// # Form Data

// FormData is everything the applicant has entered so far.
type FormData struct {
	Name         string   `json:"name"`
	Bio          string   `json:"bio"`
	Categories   []string `json:"categories"`
	Languages    []string `json:"languages"`
	FeeRange     string   `json:"fee_range"`
	Location     string   `json:"location"`
	ProfileImage *Image   `json:"profile_image,omitempty"`
}

// Field names, shared by validation errors and the PATCH payload.
const (
	FieldName       = "name"
	FieldBio        = "bio"
	FieldCategories = "categories"
	FieldLanguages  = "languages"
	FieldFeeRange   = "fee_range"
	FieldLocation   = "location"
)

// progressFields are the six inputs counted by [Wizard.Progress].
var progressFields = []string{FieldName, FieldBio, FieldCategories, FieldLanguages, FieldFeeRange, FieldLocation}

// filled reports whether field holds a non-blank string or a non-empty list.
func (data FormData) filled(field string) bool {
	switch field {
	case FieldName:
		return strings.TrimSpace(data.Name) != ""
	case FieldBio:
		return strings.TrimSpace(data.Bio) != ""
	case FieldCategories:
		return len(data.Categories) > 0
	case FieldLanguages:
		return len(data.Languages) > 0
	case FieldFeeRange:
		return strings.TrimSpace(data.FeeRange) != ""
	case FieldLocation:
		return strings.TrimSpace(data.Location) != ""
	}
	return false
}

// # Vocabularies

// Option is one selectable value and its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var categoryOptions = []Option{
	{"singer", "Singer"}, {"dancer", "Dancer"}, {"speaker", "Speaker"}, {"dj", "DJ"},
	{"musician", "Musician"}, {"comedian", "Comedian"}, {"magician", "Magician"},
	{"actor", "Actor"}, {"poet", "Poet"}, {"other", "Other"},
}

var languageOptions = []Option{
	{"english", "English"}, {"spanish", "Spanish"}, {"french", "French"}, {"german", "German"},
	{"italian", "Italian"}, {"portuguese", "Portuguese"}, {"mandarin", "Mandarin"},
	{"japanese", "Japanese"}, {"korean", "Korean"}, {"arabic", "Arabic"},
	{"russian", "Russian"}, {"hindi", "Hindi"},
}

// feeRanges are the accepted fee labels in rupees, lowest first.
var feeRanges = []string{
	rupee.FormatRange(5000, 10000),
	rupee.FormatRange(10000, 15000),
	rupee.FormatRange(15000, 25000),
	rupee.FormatRange(25000, 35000),
	rupee.FormatRange(35000, 50000),
	rupee.FormatRange(50000, 75000),
	rupee.FormatRange(75000, 100000),
	rupee.FormatOpenEnded(100000),
}

func values(options []Option) []string {
	return slice.Map(options, func(o Option) string { return o.Value })
}

// CategoryLabel returns the display label for a category value, or the
// value itself when it is not in the vocabulary.
func CategoryLabel(value string) string {
	for _, o := range categoryOptions {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// # Sections

// Section describes one wizard step.
type Section struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var sections = [...]Section{
	{ID: "personal", Title: "Personal Information", Description: "Tell us about yourself and your background"},
	{ID: "professional", Title: "Professional Details", Description: "Share your expertise and specializations"},
	{ID: "media", Title: "Profile & Location", Description: "Add your photo and location details"},
}

// Options is the static form configuration served to clients.
type Options struct {
	Sections      []Section `json:"sections"`
	Categories    []Option  `json:"categories"`
	Languages     []Option  `json:"languages"`
	FeeRanges     []string  `json:"fee_ranges"`
	MaxImageBytes int64     `json:"max_image_bytes"`
	MaxCategories int       `json:"max_categories"`
	MaxLanguages  int       `json:"max_languages"`
}

// # Validation Rules

const (
	nameMin     = 2
	nameMax     = 50
	bioMin      = 50
	bioMax      = 500
	categoryMax = 3
	languageMax = 5
	locationMin = 3
)

// check validates the given fields of data and returns their errors.
// Messages are the ones shown beside each input.
func check(data FormData, fields ...string) []apperr.FieldError {
	validator := &validate.Validator{}

	for _, field := range fields {
		switch field {
		case FieldName:
			lengthRule(validator, field, data.Name, "Name", nameMin, nameMax)
		case FieldBio:
			lengthRule(validator, field, data.Bio, "Bio", bioMin, bioMax)
		case FieldCategories:
			validator.
				Count(field, len(data.Categories), 1, categoryMax, "category").
				Subset(field, data.Categories, values(categoryOptions)...)
		case FieldLanguages:
			validator.
				Count(field, len(data.Languages), 1, languageMax, "language").
				Subset(field, data.Languages, values(languageOptions)...)
		case FieldFeeRange:
			if strings.TrimSpace(data.FeeRange) == "" {
				validator.Custom(field, true, "Fee range is required")
			} else {
				validator.OneOf(field, data.FeeRange, feeRanges...)
			}
		case FieldLocation:
			location := strings.TrimSpace(data.Location)
			validator.
				Custom(field, location == "", "Location is required").
				Custom(field, location != "" && utf8.RuneCountInString(location) < locationMin, "Location must be at least 3 characters")
		}
	}

	return validator.Errors()
}

// lengthRule reports the first failing bound only.
func lengthRule(validator *validate.Validator, field, value, label string, min, max int) {
	trimmed := strings.TrimSpace(value)
	n := utf8.RuneCountInString(trimmed)

	switch {
	case trimmed == "":
		validator.Custom(field, true, label+" is required")
	case n < min:
		validator.Custom(field, true, label+" must be at least "+strconv.Itoa(min)+" characters")
	case n > max:
		validator.Custom(field, true, label+" must be less than "+strconv.Itoa(max)+" characters")
	}
}
