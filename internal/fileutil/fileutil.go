package fileutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ReplaceFile rewrites the file at path with the bytes produced by write.
//
// Symlinks are followed so the link target receives the data, and an existing
// file keeps its permissions; a new file gets mode. Data is staged in a temp
// file beside the destination and renamed into place. When the directory
// refuses new files but the destination already exists, the destination is
// truncated and rewritten in place instead.
func ReplaceFile(path string, mode os.FileMode, write func(io.Writer) error) error {
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}
	exists := false
	if info, err := os.Stat(target); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", target)
		}
		mode = info.Mode().Perm()
		exists = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	staged, err := replaceViaRename(target, mode, write)
	if err != nil && !staged && exists && errors.Is(err, fs.ErrPermission) {
		return rewriteInPlace(target, write)
	}
	return err
}

// resolveTarget follows symlinks in path. A dangling final link resolves to
// the file it names so that file is created.
func resolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	link, linkErr := os.Readlink(path)
	if linkErr != nil {
		return path, nil
	}
	if !filepath.IsAbs(link) {
		link = filepath.Join(filepath.Dir(path), link)
	}
	return link, nil
}

// replaceViaRename reports whether the temp file was created, so callers can
// tell a directory permission failure from a later one.
func replaceViaRename(path string, mode os.FileMode, write func(io.Writer) error) (staged bool, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return false, err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err = write(buf); err != nil {
		return true, err
	}
	if err = buf.Flush(); err != nil {
		return true, fmt.Errorf("flush %s: %w", tmpPath, err)
	}
	if err = tmp.Sync(); err != nil {
		return true, fmt.Errorf("sync %s: %w", tmpPath, err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return true, fmt.Errorf("chmod %s: %w", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return true, fmt.Errorf("close %s: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return true, err
	}
	return true, nil
}

func rewriteInPlace(path string, write func(io.Writer) error) error {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer out.Close()

	buf := bufio.NewWriter(out)
	if err := write(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return out.Close()
}
