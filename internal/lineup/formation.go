package lineup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedFormation is returned when a formation string does not split
// into 3 or 4 positive numeric groups.
var ErrMalformedFormation = errors.New("malformed formation")

// Formation is a team's tactical shape parsed from a string such as "4-4-2"
// or "4-2-3-1". The first group is always defenders and the last attackers.
// A 4-group formation fills Mid0 and Mid2 and leaves Mid1 at zero; a 3-group
// formation fills only Mid1. The zero groups matter: lateral slot
// denominators are taken from the group a player actually resolves into, so
// they must stay zero rather than being collapsed away.
type Formation struct {
	Raw     string
	Defense int
	Mid0    int
	Mid1    int
	Mid2    int
	Attack  int
}

// Midfield returns the total number of midfielders across all sub-groups.
func (f Formation) Midfield() int {
	return f.Mid0 + f.Mid1 + f.Mid2
}

// ParseFormation splits a formation string on its non-digit separator into
// integer groups and maps them onto the fixed defense/midfield/attack shape.
func ParseFormation(s string) (Formation, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if len(fields) != 3 && len(fields) != 4 {
		return Formation{}, fmt.Errorf("%w: %q", ErrMalformedFormation, s)
	}

	groups := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n <= 0 {
			return Formation{}, fmt.Errorf("%w: %q", ErrMalformedFormation, s)
		}
		groups[i] = n
	}

	f := Formation{
		Raw:     s,
		Defense: groups[0],
		Attack:  groups[len(groups)-1],
	}
	if len(groups) == 4 {
		f.Mid0 = groups[1]
		f.Mid2 = groups[2]
	} else {
		f.Mid1 = groups[1]
	}
	return f, nil
}
