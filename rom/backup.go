package rom

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotROM = errors.New("not a usable ROM")

const ROM_EXT = ".z64"

// Check applies the sanity checks a ROM path has to pass before anything
// reads it. It can't tell a wrong game or version from the right one.
func Check(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%v: %w: %w", path, ErrNotROM, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%v: %w: not a regular file", path, ErrNotROM)
	}
	if !strings.EqualFold(filepath.Ext(path), ROM_EXT) {
		return fmt.Errorf("%v: %w: only %v files are supported", path, ErrNotROM, ROM_EXT)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("%v: %w: file is empty", path, ErrNotROM)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%v: %w: %w", path, ErrNotROM, err)
	}
	return f.Close()
}

// Backup_path is where the backup of a ROM goes: "<stem> (backup).z64" next to it.
func Backup_path(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + " (backup)" + ext
}

// Backup copies the ROM aside, keeping its mode and modification time.
// An existing backup is overwritten.
func (s *Session) Backup() (string, error) {
	target := Backup_path(s.Path)

	in, err := os.Open(s.Path)
	if err != nil {
		return "", err
	}
	defer in.Close()
	fi, err := in.Stat()
	if err != nil {
		return "", err
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	if err := os.Chtimes(target, fi.ModTime(), fi.ModTime()); err != nil {
		return "", err
	}

	s.Logger.Info("backed up", "rom", s.Path, "backup", target)
	return target, nil
}
