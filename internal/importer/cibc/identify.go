package cibc

import (
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/manchego/internal/account"
	enc "github.com/MrJamesThe3rd/manchego/internal/encoding"
)

// Heuristic names the rule that classified a file.
type Heuristic string

const (
	ByFilename   Heuristic = "filename"
	ByCardNumber Heuristic = "card_number"
	ByRent       Heuristic = "rent_payment"
	ByPayee      Heuristic = "recurring_payee"
)

type Match struct {
	Label account.Label
	By    Heuristic
}

const (
	personalCardSuffix = "9256"
	businessCardSuffix = "4128"

	rentPayee     = "suzanne"
	royaltyPayee  = "socan"
	maxRentDay    = 3
	minRentDay    = 1
	cardNumberCol = 4
)

var (
	minRent = decimal.NewFromInt(1200)
	maxRent = decimal.NewFromInt(1250)
)

type filenameRule struct {
	tokens   []string
	label    account.Label
	skipVisa bool
}

var filenameRules = []filenameRule{
	{tokens: []string{"personal-visa", "visa-personal"}, label: account.PersonalVisa},
	{tokens: []string{"business-visa", "visa-business"}, label: account.BusinessVisa},
	{tokens: []string{"personal-chequing", "chequing-personal"}, label: account.PersonalChequing, skipVisa: true},
	{tokens: []string{"business-savings", "savings-business"}, label: account.BusinessSavings, skipVisa: true},
}

// Identify classifies a statement file. Rules are tried in order and the
// first match wins. Content rules treat an unreadable file as a non-match.
func Identify(path string) (Match, bool) {
	rules := []struct {
		by    Heuristic
		match func(string) (account.Label, bool)
	}{
		{ByFilename, matchFilename},
		{ByCardNumber, matchCardNumber},
		{ByRent, matchRent},
		{ByPayee, matchRoyaltyPayee},
	}

	for _, r := range rules {
		if label, ok := r.match(path); ok {
			return Match{Label: label, By: r.by}, true
		}
	}

	return Match{}, false
}

func matchFilename(path string) (account.Label, bool) {
	name := strings.ToLower(filepath.Base(path))

	for _, rule := range filenameRules {
		if rule.skipVisa && strings.Contains(name, "visa") {
			continue
		}

		for _, tok := range rule.tokens {
			if strings.Contains(name, tok) {
				return rule.label, true
			}
		}
	}

	return "", false
}

func matchCardNumber(path string) (account.Label, bool) {
	var label account.Label

	err := scan(path, func(fields []string) bool {
		if len(fields) != 5 {
			return true
		}

		card := strings.TrimSpace(fields[cardNumberCol])

		switch {
		case strings.HasSuffix(card, personalCardSuffix):
			label = account.PersonalVisa
		case strings.HasSuffix(card, businessCardSuffix):
			label = account.BusinessVisa
		}

		return true
	})

	return label, err == nil && label != ""
}

// matchRent looks for the monthly rent transfer that only ever leaves the
// personal chequing account.
func matchRent(path string) (account.Label, bool) {
	found := false

	err := scan(path, func(fields []string) bool {
		if len(fields) < 3 {
			return false
		}

		if !strings.Contains(strings.ToLower(fields[1]), rentPayee) {
			return false
		}

		amount, _, ok, err := splitAmount(cellValue(fields, 2), cellValue(fields, 3))
		if !ok || err != nil {
			return false
		}

		if amount.LessThan(minRent) || amount.GreaterThan(maxRent) {
			return false
		}

		day, ok := dayOfMonth(cellValue(fields, 0))
		if !ok || day < minRentDay || day > maxRentDay {
			return false
		}

		found = true

		return true
	})

	if err != nil || !found {
		return "", false
	}

	return account.PersonalChequing, true
}

// matchRoyaltyPayee classifies files with royalty deposits as business
// savings. The rent payee anywhere in the file vetoes it, since both show up
// together in chequing activity.
func matchRoyaltyPayee(path string) (account.Label, bool) {
	var royalty, rent bool

	err := scan(path, func(fields []string) bool {
		if len(fields) < 2 {
			return false
		}

		desc := strings.ToLower(fields[1])
		royalty = royalty || strings.Contains(desc, royaltyPayee)
		rent = rent || strings.Contains(desc, rentPayee)

		return false
	})

	if err != nil || !royalty || rent {
		return "", false
	}

	return account.BusinessSavings, true
}

func dayOfMonth(date string) (int, bool) {
	parts := strings.Split(date, "-")
	if len(parts) < 3 {
		return 0, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0, false
	}

	return day, true
}

// scan feeds each row of the file to fn until fn returns true or the input
// ends.
func scan(path string, fn func(fields []string) bool) error {
	f, err := enc.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := newReader(f)

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		if fn(fields) {
			return nil
		}
	}
}

// IdentifyFilename applies only the filename rule.
func IdentifyFilename(name string) (account.Label, bool) {
	return matchFilename(name)
}
