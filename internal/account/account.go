package account

import (
	"errors"
	"fmt"
	"strings"
)

// Label identifies one of the fixed set of accounts a statement can belong to.
type Label string

const (
	PersonalVisa     Label = "personal-visa"
	BusinessVisa     Label = "business-visa"
	PersonalChequing Label = "personal-chequing"
	BusinessSavings  Label = "business-savings"
)

var ErrUnknownLabel = errors.New("unknown account label")

// ids maps every label to the id seeded into the accounts table.
var ids = map[Label]string{
	PersonalVisa:     "account-personal-visa-uuid",
	BusinessVisa:     "account-business-visa-uuid",
	PersonalChequing: "account-checking-uuid",
	BusinessSavings:  "account-savings-uuid",
}

// Labels returns all labels in a stable order.
func Labels() []Label {
	return []Label{PersonalVisa, BusinessVisa, PersonalChequing, BusinessSavings}
}

// ID returns the account id for a label.
func ID(l Label) (string, error) {
	id, ok := ids[l]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLabel, string(l))
	}

	return id, nil
}

// Parse converts user input (case-insensitive) into a Label.
func Parse(s string) (Label, error) {
	l := Label(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := ids[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLabel, s)
	}

	return l, nil
}

func (l Label) String() string {
	return string(l)
}
