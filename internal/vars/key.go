// Package vars holds the student's bounded numeric state.
package vars

import (
	"errors"
	"fmt"
	"strings"
)

// Key names a tracked variable. The set of keys is closed; use ParseKey to
// turn free-form names (config files, catalog tables) into a Key.
type Key string

const (
	Energy         Key = "energy"
	Stress         Key = "stress"
	GPA            Key = "gpa"
	Money          Key = "money"
	Programming    Key = "programming"
	Hardware       Key = "hardware"
	Research       Key = "research"
	Internship     Key = "internship"
	TimeManagement Key = "timeManagement"
	Offers         Key = "offers"
	Semester       Key = "semester"
	Month          Key = "month"
	Year           Key = "year"
)

// ErrUnknownKey is returned when a name does not match any tracked variable.
var ErrUnknownKey = errors.New("unknown variable")

var allKeys = []Key{
	GPA, Semester, Month, Year,
	Programming, Hardware, Research, Internship,
	Energy, Stress, Money,
	TimeManagement, Offers,
}

// Keys returns every tracked key in status-panel order.
func Keys() []Key {
	out := make([]Key, len(allKeys))
	copy(out, allKeys)
	return out
}

// ParseKey validates name against the known variable set.
func ParseKey(name string) (Key, error) {
	for _, k := range allKeys {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Valid reports whether k is one of the tracked keys.
func (k Key) Valid() bool {
	_, err := ParseKey(string(k))
	return err == nil
}

func (k Key) String() string { return string(k) }

// Label is the human readable name used by the status panel.
func (k Key) Label() string {
	switch k {
	case GPA:
		return "GPA"
	case TimeManagement:
		return "Time Mgmt"
	case Offers:
		return "Job Offers"
	default:
		s := string(k)
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	}
}
