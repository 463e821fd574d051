package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/manchego/internal/account"
)

func TestID(t *testing.T) {
	type testCase struct {
		name  string
		label account.Label
		want  string
	}

	tests := []testCase{
		{name: "PersonalVisa", label: account.PersonalVisa, want: "account-personal-visa-uuid"},
		{name: "BusinessVisa", label: account.BusinessVisa, want: "account-business-visa-uuid"},
		{name: "PersonalChequing", label: account.PersonalChequing, want: "account-checking-uuid"},
		{name: "BusinessSavings", label: account.BusinessSavings, want: "account-savings-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := account.ID(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestID_UnknownLabel(t *testing.T) {
	_, err := account.ID(account.Label("invalid-label"))
	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrUnknownLabel)
}

func TestLabels_EveryLabelHasID(t *testing.T) {
	seen := make(map[string]bool)

	for _, l := range account.Labels() {
		id, err := account.ID(l)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	assert.Len(t, seen, 4)
}

func TestParse(t *testing.T) {
	got, err := account.Parse("  Business-Savings ")
	require.NoError(t, err)
	assert.Equal(t, account.BusinessSavings, got)

	_, err = account.Parse("savings")
	assert.ErrorIs(t, err, account.ErrUnknownLabel)
}
