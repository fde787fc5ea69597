package condottieri

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// incomeListRe is the shape every stored income list must have
var incomeListRe = regexp.MustCompile(`^([0-9]+,\s*){5}[0-9]+$`)

// IncomeTable maps a six sided die roll to an amount of ducats.
type IncomeTable [6]int

// ParseIncomeTable parses "1,2,3,4,5,6" style lists.
func ParseIncomeTable(in string) (IncomeTable, error) {
	var table IncomeTable
	in = strings.TrimSpace(in)
	if !incomeListRe.MatchString(in) {
		return table, errors.Wrapf(ErrMalformedIncomeTable, "%q", in)
	}
	for i, field := range strings.Split(in, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return table, errors.Wrapf(ErrMalformedIncomeTable, "%q", in)
		}
		table[i] = v
	}
	return table, nil
}

// Ducats returns the income for a die roll in [1,6], doubled if double
// is set.
func (t IncomeTable) Ducats(die int, double bool) (int, error) {
	if die < 1 || die > len(t) {
		return 0, errors.Errorf("die roll %d out of range [1,%d]", die, len(t))
	}
	v := t[die-1]
	if double {
		v *= 2
	}
	return v, nil
}

// String returns the table in the stored "1,2,3,4,5,6" form
func (t IncomeTable) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
