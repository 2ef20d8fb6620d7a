package entry

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidPlate = errors.New("invalid plate number")

const (
	MinPlateLength = 2
	MaxPlateLength = 12
)

// Plates are normalized to uppercase before validation; interior spaces and
// dashes are allowed so "RAB 123 A" and "AB-123-CD" both pass.
var plateRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9 \-]*[A-Z0-9]$`)

type Plate struct {
	value string
}

func NewPlate(s string) (Plate, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < MinPlateLength || len(s) > MaxPlateLength {
		return Plate{}, ErrInvalidPlate
	}
	if !plateRegex.MatchString(s) {
		return Plate{}, ErrInvalidPlate
	}
	return Plate{value: s}, nil
}

func (p Plate) Value() string {
	return p.value
}
