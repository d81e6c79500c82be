package domain

import "fmt"

// Person is one entry of the people list
type Person struct {
	Name string `json:"name"`
	Born int    `json:"born"`
	Died int    `json:"died"`
}

// String formats the person as shown in the header, e.g. "Alice (1990 - 2050)"
func (p Person) String() string {
	return fmt.Sprintf("%s (%d - %d)", p.Name, p.Born, p.Died)
}
