package sape

import (
	"fmt"

	"gam-provisioner/core/apperr"
)

// Adaptive is the size key of width-less (fluid) sizes.
const Adaptive = "ADAPTIVE"

var sizeIDs = map[string]int{
	"240x400": 1,
	"728x90":  2,
	"300x250": 3,
	"468x60":  4,
	"160x600": 5,
	"120x600": 6,
	"300x600": 7,
	"970x90":  8,
	"600x340": 9,
	"240x120": 10,
	"640x480": 11,
	"192x160": 12,
	"320x50":  13,
	"320x100": 16,
	"970x250": 17,
	Adaptive:  99,
}

// SizeKey returns "WxH", or ADAPTIVE when width is 0. Sizes the marketplace does not
// support are a CONFIGURATION error.
func SizeKey(width, height int) (string, error) {
	key := Adaptive
	if width != 0 {
		key = fmt.Sprintf("%dx%d", width, height)
	}
	if _, ok := sizeIDs[key]; !ok {
		return "", apperr.Newf(apperr.CodeConfiguration, "Not found place size %q.", key)
	}
	return key, nil
}

// SizeID returns the marketplace id of a size key.
func SizeID(key string) (int, bool) {
	id, ok := sizeIDs[key]
	return id, ok
}
