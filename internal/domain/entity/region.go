package entity

import (
	"errors"
	"strings"
)

// Region identifies one of the countries the clinic operates in.
type Region string

const (
	RegionChile    Region = "chile"
	RegionColombia Region = "colombia"
)

var ErrUnknownRegion = errors.New("unknown region")

// Regions lists every supported region in display order.
func Regions() []Region {
	return []Region{RegionChile, RegionColombia}
}

// ParseRegion accepts the region key case-insensitively.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrUnknownRegion
	}
	return r, nil
}

func (r Region) Valid() bool {
	switch r {
	case RegionChile, RegionColombia:
		return true
	}
	return false
}

func (r Region) String() string {
	return string(r)
}
