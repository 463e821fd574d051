package importer_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/manchego/internal/account"
	"github.com/MrJamesThe3rd/manchego/internal/importer"
	"github.com/MrJamesThe3rd/manchego/internal/importer/cibc"
)

func TestService_Label(t *testing.T) {
	type args struct {
		name  string
		label string
	}

	type testCase struct {
		name        string
		args        args
		wantRenamed string
		wantErr     error
	}

	tests := []testCase{
		{
			name:        "Success",
			args:        args{name: "export.csv", label: "personal-chequing"},
			wantRenamed: "personal-chequing_export.csv",
		},
		{
			name:        "CaseInsensitiveLabel",
			args:        args{name: "export.csv", label: " Business-Savings "},
			wantRenamed: "business-savings_export.csv",
		},
		{
			name:    "UnknownLabel",
			args:    args{name: "export.csv", label: "crypto"},
			wantErr: account.ErrUnknownLabel,
		},
		{
			name:    "MissingFile",
			args:    args{name: "nope.csv", label: "personal-visa"},
			wantErr: fs.ErrNotExist,
		},
		{
			name:    "OutsideIntake",
			args:    args{name: "../export.csv", label: "personal-visa"},
			wantErr: importer.ErrInvalidName,
		},
		{
			name:    "AlreadyLabeled",
			args:    args{name: "visa-business-2025.csv", label: "personal-visa"},
			wantErr: importer.ErrAlreadyLabeled,
		},
		{
			name:    "VisaInNameConflictsWithChequing",
			args:    args{name: "visa_statement.csv", label: "personal-chequing"},
			wantErr: importer.ErrLabelConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dirs := testDirs(t)
			writeFile(t, dirs.Raw, "export.csv", "2025-01-01,Coffee,4.50,\n")
			writeFile(t, dirs.Raw, "visa-business-2025.csv", "")
			writeFile(t, dirs.Raw, "visa_statement.csv", "")

			svc := newService(nil, dirs)

			renamed, err := svc.Label(tt.args.name, tt.args.label)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRenamed, renamed)
			assert.FileExists(t, filepath.Join(dirs.Raw, renamed))
			assert.NoFileExists(t, filepath.Join(dirs.Raw, tt.args.name))
		})
	}
}

func TestService_Pending(t *testing.T) {
	dirs := testDirs(t)
	writeFile(t, dirs.Raw, "mystery.csv", "2025-01-01,Coffee,4.50,\n")
	writeFile(t, dirs.Raw, "stmt.csv", "2025-01-01,Test,10.00,,4500********4128\n")

	svc := newService(nil, dirs)

	pending, err := svc.Pending()
	require.NoError(t, err)
	require.Len(t, pending, 2)

	assert.Equal(t, "mystery.csv", pending[0].Name)
	assert.False(t, pending[0].Identified)
	assert.Positive(t, pending[0].Size)

	assert.Equal(t, "stmt.csv", pending[1].Name)
	assert.True(t, pending[1].Identified)
	assert.Equal(t, account.BusinessVisa, pending[1].Label)
	assert.Equal(t, cibc.ByCardNumber, pending[1].By)

	// labeling makes the next listing classify the file by name
	_, err = svc.Label("mystery.csv", "personal-chequing")
	require.NoError(t, err)

	pending, err = svc.Pending()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "personal-chequing_mystery.csv", pending[0].Name)
	assert.Equal(t, account.PersonalChequing, pending[0].Label)
	assert.Equal(t, cibc.ByFilename, pending[0].By)

	// nothing moved
	assert.FileExists(t, filepath.Join(dirs.Raw, "stmt.csv"))
}
