package importer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MrJamesThe3rd/manchego/internal/account"
	"github.com/MrJamesThe3rd/manchego/internal/importer/cibc"
)

var (
	ErrInvalidName    = errors.New("file must be named directly inside the intake directory")
	ErrAlreadyLabeled = errors.New("file name already carries an account label")
	ErrLabelConflict  = errors.New("labeled name would not be classified as the requested account")
)

// PendingFile is an intake file with the account it would be imported into.
type PendingFile struct {
	Name       string         `json:"name"`
	Path       string         `json:"-"`
	Size       int64          `json:"size"`
	Identified bool           `json:"identified"`
	Label      account.Label  `json:"label,omitempty"`
	By         cibc.Heuristic `json:"by,omitempty"`
}

// Pending lists the intake directory without moving anything.
func (s *Service) Pending() ([]PendingFile, error) {
	files, err := Discover(s.cfg.Dirs.Raw, s.cfg.Extension)
	if err != nil {
		return nil, err
	}

	pending := make([]PendingFile, 0, len(files))

	for _, path := range files {
		p := PendingFile{Name: filepath.Base(path), Path: path}

		if info, err := os.Stat(path); err == nil {
			p.Size = info.Size()
		}

		if m, ok := s.format.Identify(path); ok {
			p.Identified = true
			p.Label = m.Label
			p.By = m.By
		}

		pending = append(pending, p)
	}

	return pending, nil
}

// Label prefixes an intake file with an account label so the next run
// classifies it by name. It returns the new file name.
func (s *Service) Label(name, label string) (string, error) {
	l, err := account.Parse(label)
	if err != nil {
		return "", err
	}

	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	src := filepath.Join(s.cfg.Dirs.Raw, name)

	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("labeling %s: %w", name, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidName, name)
	}

	if existing, ok := cibc.IdentifyFilename(name); ok {
		return "", fmt.Errorf("%w: %s is already %s", ErrAlreadyLabeled, name, existing)
	}

	renamed := fmt.Sprintf("%s_%s", l, name)
	if got, ok := cibc.IdentifyFilename(renamed); !ok || got != l {
		return "", fmt.Errorf("%w: %s", ErrLabelConflict, renamed)
	}

	dst := filepath.Join(s.cfg.Dirs.Raw, renamed)

	if _, err := os.Stat(dst); err == nil {
		return "", fmt.Errorf("labeling %s: %w", name, fs.ErrExist)
	}

	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("labeling %s: %w", name, err)
	}

	s.log.Info("labeled intake file", "file", name, "label", l, "renamed", renamed)

	return renamed, nil
}
