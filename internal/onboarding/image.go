// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"path"
	"strings"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/pkg/slug"
)

// Image references an uploaded profile photo. The bytes live in blob storage.
type Image struct {
	Key         string `json:"key"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
}

// CheckImage rejects files over the size limit and anything that is not an image.
func CheckImage(contentType string, size int64) error {
	if size > constants.MaxProfileImageBytes {
		return apperr.InvalidImage("File size must be less than 5MB. Please choose a smaller image.")
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return apperr.InvalidImage("Please select an image file (PNG, JPG, JPEG, GIF, etc.)")
	}
	return nil
}

// imageKey builds "onboarding/<session>/<slugged-name><ext>".
func imageKey(sessionID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	return path.Join("onboarding", sessionID, slug.Or(base, "profile")+ext)
}
