package det

import (
	"fmt"
	"strings"
)

// Class identifies the kind of object inside a detection box.
// The numeric values are stable, so they are safe to store or send on the wire.
type Class int

const (
	ClassFace Class = 0
	ClassGun  Class = 1
	ClassMask Class = 2
)

// ClassNames[c] is the canonical name of class c
var ClassNames = []string{
	"face",
	"gun",
	"mask",
}

// AllClasses lists every class, in numeric order
var AllClasses = []Class{ClassFace, ClassGun, ClassMask}

func (c Class) String() string {
	if c < 0 || int(c) >= len(ClassNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return ClassNames[c]
}

// ParseClass is the inverse of Class.String(). Case insensitive.
func ParseClass(s string) (Class, error) {
	for i, name := range ClassNames {
		if strings.EqualFold(s, name) {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("Unknown class '%v'. Valid classes are '%v'", s, strings.Join(ClassNames, "', '"))
}
