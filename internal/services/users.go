package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	petname "github.com/dustinkirkland/golang-petname"
)

const (
	MinNameLength = 3
	MaxNameLength = 15
)

var ErrInvalidName = errors.New("invalid name")

// ValidateName trims the input and checks it is 3-15 characters long.
func ValidateName(input string) (string, error) {
	name := strings.TrimSpace(input)
	n := utf8.RuneCountInString(name)
	if n < MinNameLength || n > MaxNameLength {
		return "", fmt.Errorf("%w: must be %d-%d characters, got %d", ErrInvalidName, MinNameLength, MaxNameLength, n)
	}
	return name, nil
}

// GenerateName picks a random two-word name that passes ValidateName,
// falling back to a single word when the pairs keep coming out too long.
func GenerateName() string {
	for range 10 {
		if name, err := ValidateName(petname.Generate(2, "-")); err == nil {
			return name
		}
	}
	for range 10 {
		if name, err := ValidateName(petname.Name()); err == nil {
			return name
		}
	}
	return "player"
}
