// Package fileManagement provides the small set of file operations the
// restore engine needs: existence checks, plain file copies, removal of
// possibly-absent files, and locating external programs in PATH.
package fileManagement

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Exists reports whether a file or directory exists at the given path.
func Exists(filePath string) bool {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return false
	}
	return true
}

// Copy copies a single file from source to destination, preserving the
// source's permission bits. Data forks only; extended attributes and
// resource forks are not carried over.
func Copy(srcFile, dstFile string) error {
	in, err := os.Open(srcFile)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dstFile)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	info, err := in.Stat()
	if err != nil {
		return err
	}
	return os.Chmod(dstFile, info.Mode())
}

// RemoveIfExists deletes the file at the given path if it is present.
// A missing file is not an error.
func RemoveIfExists(filePath string) error {
	err := os.Remove(filePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FindProgramPath locates an executable program in the system PATH.
func FindProgramPath(program string) (string, error) {
	path, err := exec.LookPath(program)
	if err != nil {
		return "", fmt.Errorf("program %q not found in PATH", program)
	}
	return path, nil
}
