// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package rupee formats and parses Indian Rupee amounts.
//
// Amounts use the Indian digit grouping: the last three digits form one
// group and every group above it has two digits, so 100000 is "₹1,00,000".
package rupee

import (
	"strconv"
	"strings"

	"github.com/taibuivan/artistly/pkg/convert"
)

// Symbol is the Indian Rupee sign.
const Symbol = "₹"

// Format renders amount as "₹1,00,000".
func Format(amount int) string {
	return Symbol + Group(amount)
}

// FormatRange renders "₹5,000 - ₹10,000".
func FormatRange(min, max int) string {
	return Format(min) + " - " + Format(max)
}

// FormatFrom renders the listing label "From ₹15,000".
func FormatFrom(amount int) string {
	return "From " + Format(amount)
}

// FormatOpenEnded renders an unbounded upper tier, e.g. "₹1,00,000+".
func FormatOpenEnded(min int) string {
	return Format(min) + "+"
}

// Group applies Indian digit grouping without the currency sign.
func Group(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return sign + strings.Join(groups, ",") + "," + tail
}

// ParseRange extracts the bounds of a "₹5,000 - ₹10,000" label.
//
// An open-ended label such as "₹1,00,000+" yields max = -1. ok is false when
// no amount can be found.
func ParseRange(label string) (min, max int, ok bool) {
	parts := strings.SplitN(label, "-", 2)

	lower := convert.Digits(parts[0])
	if lower == "" {
		return 0, 0, false
	}
	min = convert.ToInt(lower)

	if len(parts) == 1 {
		if strings.HasSuffix(strings.TrimSpace(label), "+") {
			return min, -1, true
		}
		return min, min, true
	}

	upper := convert.Digits(parts[1])
	if upper == "" {
		return 0, 0, false
	}
	return min, convert.ToInt(upper), true
}
