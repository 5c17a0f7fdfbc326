package hero

import (
	"strings"
	"unicode/utf8"

	"github.com/cory-johannsen/herogen/internal/game/klass"
	"github.com/cory-johannsen/herogen/internal/game/race"
	"github.com/cory-johannsen/herogen/internal/game/trait"
)

// MaxNameLength is the longest accepted hero name, in runes.
const MaxNameLength = 40

// Gender re-exports race.Gender for callers that only build requests.
type Gender = race.Gender

// Genders.
const (
	Male   = race.Male
	Female = race.Female
)

// HairColors lists the accepted hair colors.
var HairColors = []string{"bald", "black", "blonde", "brown", "gray", "red", "silver", "streaked", "white"}

// Request is the five user choices a hero is generated from.
type Request struct {
	Name      string
	Gender    Gender
	HairColor string
	Race      race.Name
	Klass     klass.Name
}

// ParseRequest builds a Request from raw strings.
//
// Postcondition: a nil error means the returned Request passes Validate.
func ParseRequest(name, gender, hair, raceName, klassName string) (Request, error) {
	g, err := race.ParseGender(gender)
	if err != nil {
		return Request{}, invalid("gender", "%q is not Male or Female", gender)
	}
	r, err := race.Parse(raceName)
	if err != nil {
		return Request{}, invalid("race", "%q is not a known race", raceName)
	}
	k, err := klass.Parse(klassName)
	if err != nil {
		return Request{}, invalid("klass", "%q is not a known klass", klassName)
	}
	req := Request{
		Name:      strings.TrimSpace(name),
		Gender:    g,
		HairColor: strings.ToLower(strings.TrimSpace(hair)),
		Race:      r,
		Klass:     k,
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Validate returns an *InvalidInputError for the first failing field.
func (r Request) Validate() error {
	if err := validateName(r.Name); err != nil {
		return err
	}
	if r.Gender != Male && r.Gender != Female {
		return invalid("gender", "unknown gender %d", int(r.Gender))
	}
	if !validHair(r.HairColor) {
		return invalid("hair", "%q is not one of %s", r.HairColor, strings.Join(HairColors, ", "))
	}
	if _, err := race.Lookup(r.Race); err != nil {
		return invalid("race", "%s", err)
	}
	if _, err := klass.Lookup(r.Klass); err != nil {
		return invalid("klass", "%s", err)
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("name", "must not be empty")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return invalid("name", "%d characters exceeds the limit of %d", n, MaxNameLength)
	}
	return nil
}

func validHair(h string) bool {
	for _, c := range HairColors {
		if c == h {
			return true
		}
	}
	return false
}

// AdjustForGender applies the female adjustment: STR-1, CON+1, CHR+1. Males are
// unchanged.
func AdjustForGender(ts trait.Traits, g Gender) trait.Traits {
	if g != Female {
		return ts
	}
	return ts.Adjust(trait.Traits{-1, 0, 0, 0, 1, 1})
}
