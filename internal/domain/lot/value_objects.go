package lot

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCode  = errors.New("invalid lot code")
	ErrEmptyName    = errors.New("lot name cannot be empty")
	ErrNameTooLong  = errors.New("lot name too long")
	ErrNegativeRate = errors.New("hourly rate cannot be negative")
)

const MaxNameLength = 100

// Short human-facing identifier attendants type at the gate, distinct from the lot's id.
var codeRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9\-]{1,9}$`)

type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !codeRegex.MatchString(s) {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

func (c Code) Value() string {
	return c.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if len(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type HourlyRate struct {
	value decimal.Decimal
}

func NewHourlyRate(d decimal.Decimal) (HourlyRate, error) {
	if d.IsNegative() {
		return HourlyRate{}, ErrNegativeRate
	}
	return HourlyRate{value: d}, nil
}

func (r HourlyRate) Value() decimal.Decimal {
	return r.value
}
