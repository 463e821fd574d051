package importer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// moveFile renames src to dst, copying across filesystems when a rename is
// not possible. The destination directory must exist. An existing dst is
// never replaced; the error then wraps fs.ErrExist.
func moveFile(src, dst string) error {
	_, err := os.Lstat(dst)
	if err == nil {
		return fmt.Errorf("%s: %w", filepath.Base(dst), fs.ErrExist)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	err = os.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}

	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)

		return fmt.Errorf("copying %s: %w", filepath.Base(src), err)
	}

	return out.Close()
}
