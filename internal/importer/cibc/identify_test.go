package cibc_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/manchego/internal/account"
	"github.com/MrJamesThe3rd/manchego/internal/importer/cibc"
)

func TestIdentify(t *testing.T) {
	type args struct {
		name    string
		content string
	}

	type testCase struct {
		name      string
		args      args
		wantLabel account.Label
		wantBy    cibc.Heuristic
		wantOK    bool
	}

	tests := []testCase{
		{
			name:      "FilenamePersonalVisa",
			args:      args{name: "personal-visa_jan.csv", content: "2025-01-01,Test,10.00,,\n"},
			wantLabel: account.PersonalVisa,
			wantBy:    cibc.ByFilename,
			wantOK:    true,
		},
		{
			name:      "FilenameReversedBusinessVisa",
			args:      args{name: "Visa-Business-2025.csv", content: ""},
			wantLabel: account.BusinessVisa,
			wantBy:    cibc.ByFilename,
			wantOK:    true,
		},
		{
			name:      "FilenameChequing",
			args:      args{name: "chequing-personal.csv", content: "2025-01-01,Test,10.00,\n"},
			wantLabel: account.PersonalChequing,
			wantBy:    cibc.ByFilename,
			wantOK:    true,
		},
		{
			name:      "FilenameSavings",
			args:      args{name: "business-savings.csv", content: ""},
			wantLabel: account.BusinessSavings,
			wantBy:    cibc.ByFilename,
			wantOK:    true,
		},
		{
			name:   "FilenameChequingVetoedByVisa",
			args:   args{name: "personal-chequing-visa.csv", content: "2025-01-01,Test,10.00,\n"},
			wantOK: false,
		},
		{
			name:      "PersonalCardSuffix",
			args:      args{name: "cibc.csv", content: "2025-01-01,Test,10.00,,\"4500********9256\"\n"},
			wantLabel: account.PersonalVisa,
			wantBy:    cibc.ByCardNumber,
			wantOK:    true,
		},
		{
			name:      "BusinessCardSuffix",
			args:      args{name: "cibc.csv", content: "2025-01-01,Test,10.00,, 4500********4128 \n"},
			wantLabel: account.BusinessVisa,
			wantBy:    cibc.ByCardNumber,
			wantOK:    true,
		},
		{
			name:   "CardSuffixOnlyOnFirstRow",
			args:   args{name: "cibc.csv", content: "2025-01-01,Test,10.00,\n2025-01-02,Test,10.00,,4500********9256\n"},
			wantOK: false,
		},
		{
			name:      "RentPayment",
			args:      args{name: "cibc.csv", content: "2025-01-05,Coffee,4.50,\n2025-01-01,E-TRANSFER Suzanne,1241.15,\n"},
			wantLabel: account.PersonalChequing,
			wantBy:    cibc.ByRent,
			wantOK:    true,
		},
		{
			name:      "RentBandInclusive",
			args:      args{name: "cibc.csv", content: "2025-02-03,SUZANNE,1250.00,\n"},
			wantLabel: account.PersonalChequing,
			wantBy:    cibc.ByRent,
			wantOK:    true,
		},
		{
			name:   "RentAmountOutOfBand",
			args:   args{name: "cibc.csv", content: "2025-01-01,E-TRANSFER Suzanne,50.00,\n"},
			wantOK: false,
		},
		{
			name:   "RentLateInMonth",
			args:   args{name: "cibc.csv", content: "2025-01-04,E-TRANSFER Suzanne,1241.15,\n"},
			wantOK: false,
		},
		{
			name:      "RoyaltyPayee",
			args:      args{name: "cibc.csv", content: "2025-01-10,SOCAN ROYALTIES,,85.20\n2025-01-11,Transfer,100.00,\n"},
			wantLabel: account.BusinessSavings,
			wantBy:    cibc.ByPayee,
			wantOK:    true,
		},
		{
			name:   "RoyaltyPayeeVetoedByRentPayee",
			args:   args{name: "cibc.csv", content: "2025-01-10,SOCAN ROYALTIES,,85.20\n2025-01-15,Suzanne,50.00,\n"},
			wantOK: false,
		},
		{
			name:   "EmptyFile",
			args:   args{name: "cibc.csv", content: ""},
			wantOK: false,
		},
		{
			name:   "BinaryContent",
			args:   args{name: "cibc.csv", content: "\x00\x01\xff\xfe\x00garbage\"\x00"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.args.name, tt.args.content)

			got, ok := cibc.Identify(path)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.wantLabel, got.Label)
				assert.Equal(t, tt.wantBy, got.By)
			}
		})
	}
}

func TestIdentify_MissingFile(t *testing.T) {
	_, ok := cibc.New().Identify(filepath.Join(t.TempDir(), "missing.csv"))
	assert.False(t, ok)
}
