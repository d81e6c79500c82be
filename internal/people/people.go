// Package people loads the read-only list of people the picker searches.
package people

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"peoplepicker/internal/domain"
)

//go:embed people.json
var builtinPeople []byte

var (
	// ErrEmptyName is returned when a record has no name
	ErrEmptyName = errors.New("person has an empty name")
	// ErrNoPeople is returned when the list contains no records
	ErrNoPeople = errors.New("people list is empty")
)

// Source is an immutable, ordered list of people
type Source struct {
	people []domain.Person
}

// Builtin returns the list compiled into the binary
func Builtin() (*Source, error) {
	src, err := Parse(builtinPeople)
	if err != nil {
		return nil, fmt.Errorf("builtin people: %w", err)
	}
	return src, nil
}

// LoadFile reads a JSON array of {name, born, died} records from path
func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read people file: %w", err)
	}
	src, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("people file %s: %w", path, err)
	}
	return src, nil
}

// Load returns the list from path, or the builtin list when path is empty
func Load(path string) (*Source, error) {
	if path == "" {
		return Builtin()
	}
	return LoadFile(path)
}

// Parse decodes a JSON array of people. Lifespans are taken as given.
func Parse(data []byte) (*Source, error) {
	var records []domain.Person
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse people: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoPeople
	}
	for i, p := range records {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyName)
		}
	}
	return &Source{people: records}, nil
}

// All returns a copy of the list in source order
func (s *Source) All() []domain.Person {
	out := make([]domain.Person, len(s.people))
	copy(out, s.people)
	return out
}

// Len returns the number of people
func (s *Source) Len() int {
	return len(s.people)
}
