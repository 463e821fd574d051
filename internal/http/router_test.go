package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	manchegoHttp "github.com/MrJamesThe3rd/manchego/internal/http"
	accountHandler "github.com/MrJamesThe3rd/manchego/internal/http/account"
	"github.com/MrJamesThe3rd/manchego/internal/http/auth"
	importsHandler "github.com/MrJamesThe3rd/manchego/internal/http/imports"
	ledgerHandler "github.com/MrJamesThe3rd/manchego/internal/http/ledger"
	"github.com/MrJamesThe3rd/manchego/internal/importer"
	"github.com/MrJamesThe3rd/manchego/internal/ledger"
)

type fixture struct {
	router http.Handler
	dirs   importer.Dirs
}

func newFixture(t *testing.T, a *auth.Authenticator) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := ledger.NewMockRepository(ctrl)

	root := t.TempDir()
	dirs := importer.Dirs{
		Raw:      filepath.Join(root, "raw"),
		Backup:   filepath.Join(root, "backup_raw"),
		Imported: filepath.Join(root, "imported"),
	}
	require.NoError(t, os.MkdirAll(dirs.Raw, 0o755))

	importSvc := importer.NewService(repo, importer.Config{Dirs: dirs}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := manchegoHttp.New(
		accountHandler.NewHandler(),
		ledgerHandler.NewHandler(ledger.NewService(repo)),
		importsHandler.NewHandler(importSvc),
		manchegoHttp.Options{AllowedOrigins: []string{"*"}, Auth: a},
	)

	return fixture{router: router, dirs: dirs}
}

func do(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Accounts(t *testing.T) {
	f := newFixture(t, nil)

	rec := do(t, f.router, http.MethodGet, "/api/v1/accounts/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "personal-visa", got[0]["label"])
	assert.Equal(t, "account-personal-visa-uuid", got[0]["id"])
}

func TestRouter_Imports(t *testing.T) {
	f := newFixture(t, nil)

	// empty intake: clean run
	rec := do(t, f.router, http.MethodPost, "/api/v1/imports/", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var summary importer.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.True(t, summary.Success)
	assert.Zero(t, summary.Total)
	assert.True(t, strings.HasPrefix(summary.OperationID, "transactions_import_"))

	require.NoError(t, os.WriteFile(filepath.Join(f.dirs.Raw, "mystery.csv"), []byte("2025-01-01,Coffee,4.50,\n"), 0o644))

	rec = do(t, f.router, http.MethodGet, "/api/v1/imports/pending", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var pending []importer.PendingFile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.False(t, pending[0].Identified)

	rec = do(t, f.router, http.MethodPost, "/api/v1/imports/", "", "")
	require.Equal(t, http.StatusMultiStatus, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, importer.ReasonUnidentified, summary.Failures[0].Reason)

	rec = do(t, f.router, http.MethodPost, "/api/v1/imports/label", `{"file":"mystery.csv","label":"personal-chequing"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"renamed":"personal-chequing_mystery.csv"`)
	assert.FileExists(t, filepath.Join(f.dirs.Raw, "personal-chequing_mystery.csv"))
}

func TestRouter_LabelErrors(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, os.WriteFile(filepath.Join(f.dirs.Raw, "x.csv"), nil, 0o644))

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "Malformed", body: `{`, want: http.StatusBadRequest},
		{name: "UnknownLabel", body: `{"file":"x.csv","label":"crypto"}`, want: http.StatusBadRequest},
		{name: "Missing", body: `{"file":"y.csv","label":"personal-visa"}`, want: http.StatusNotFound},
		{name: "Traversal", body: `{"file":"../x.csv","label":"personal-visa"}`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, f.router, http.MethodPost, "/api/v1/imports/label", tt.body, "")
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_Auth(t *testing.T) {
	a, err := auth.New("s3cret")
	require.NoError(t, err)

	f := newFixture(t, a)

	rec := do(t, f.router, http.MethodGet, "/api/v1/accounts/", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := a.IssueToken("maria", time.Hour)
	require.NoError(t, err)

	rec = do(t, f.router, http.MethodGet, "/api/v1/accounts/", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, f.router, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
