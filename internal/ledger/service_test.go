package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/manchego/internal/ledger"
)

func TestService_List(t *testing.T) {
	type args struct {
		filter ledger.Filter
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *ledger.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "AppliesDefaultLimit",
			args: args{filter: ledger.Filter{AccountID: "account-checking-uuid"}},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					ListEntries(gomock.Any(), ledger.Filter{AccountID: "account-checking-uuid", Limit: ledger.DefaultLimit}).
					Return([]*ledger.Entry{{}, {}}, nil)
			},
			wantLen: 2,
		},
		{
			name: "KeepsExplicitLimit",
			args: args{filter: ledger.Filter{Limit: 10}},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					ListEntries(gomock.Any(), ledger.Filter{Limit: 10}).
					Return([]*ledger.Entry{{}}, nil)
			},
			wantLen: 1,
		},
		{
			name: "RepoError",
			args: args{filter: ledger.Filter{}},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					ListEntries(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("list error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := ledger.NewService(repo)
			got, err := svc.List(context.Background(), tt.args.filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_BeginFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := ledger.NewMockRepository(ctrl)
	itx := ledger.NewMockFileTx(ctrl)
	repo.EXPECT().BeginFile(gomock.Any()).Return(itx, nil)

	got, err := ledger.NewService(repo).BeginFile(context.Background())
	require.NoError(t, err)
	assert.Same(t, itx, got)
}

func TestNewEntry(t *testing.T) {
	r := ledger.Record{ID: "abc", TransactionDate: "2025-01-15", Description: "Coffee", Currency: ledger.Currency}

	e := ledger.NewEntry(r, "account-checking-uuid", "CIBC_personal-chequing_2025-01-15_to_2025-01-15.csv")

	assert.Equal(t, "abc", e.ID)
	assert.Equal(t, "account-checking-uuid", e.AccountID)
	assert.Equal(t, "CIBC_personal-chequing_2025-01-15_to_2025-01-15.csv", e.SourceFilename)
	assert.Nil(t, e.VendorID)
	assert.Nil(t, e.LocationID)
	assert.Nil(t, e.Category)
	assert.Nil(t, e.InternalNote)
}
