// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-shaped URL query parameters.
package query

import (
	"strings"
)

// StringSlice parses comma-separated query values into a trimmed slice of
// strings. Repeated parameters (?c=a&c=b) and comma lists (?c=a,b) are both
// accepted; blank entries and duplicates are dropped, first occurrence wins.
func StringSlice(vals ...string) []string {
	var res []string
	seen := make(map[string]struct{})

	for _, val := range vals {
		for _, v := range strings.Split(val, ",") {
			clean := strings.TrimSpace(v)
			if clean == "" {
				continue
			}
			if _, dup := seen[clean]; dup {
				continue
			}
			seen[clean] = struct{}{}
			res = append(res, clean)
		}
	}
	return res
}
