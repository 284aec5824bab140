// Package application: this file manipulates the Finder metadata bits stored
// in the com.apple.FinderInfo extended attribute. The attribute is a fixed
// 32-byte record; the finderFlags word sits at offset 8, big-endian. Writing
// the bits directly replaces the historical `SetFile -a` shell-outs, which is
// both injection-safe and independent of the deprecated developer tools.
package application

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

const finderInfoAttr = "com.apple.FinderInfo"

// finderInfoSize is the fixed length of the FinderInfo record: 16 bytes of
// FileInfo followed by 16 bytes of ExtendedFileInfo.
const finderInfoSize = 32

// finderFlagsOffset is the byte offset of the big-endian finderFlags word.
const finderFlagsOffset = 8

// Finder flag bits, as defined by the classic Finder.
const (
	flagHasCustomIcon uint16 = 0x0400
	flagIsInvisible   uint16 = 0x4000
)

// Flagger toggles Finder metadata bits on a file or directory.
type Flagger interface {
	// SetCustomIcon marks the path as carrying a per-file icon override.
	SetCustomIcon(path string) error
	// SetInvisible hides the path from Finder listings.
	SetInvisible(path string) error
}

// xattrFlagger is the production Flagger, writing com.apple.FinderInfo
// through the xattr syscalls.
type xattrFlagger struct{}

// NewFlagger returns the extended-attribute backed Flagger.
func NewFlagger() Flagger {
	return xattrFlagger{}
}

func (xattrFlagger) SetCustomIcon(path string) error {
	return setFinderFlag(path, flagHasCustomIcon)
}

func (xattrFlagger) SetInvisible(path string) error {
	return setFinderFlag(path, flagIsInvisible)
}

// setFinderFlag ORs a flag bit into the path's FinderInfo record, creating
// the attribute from a zeroed record when the path does not carry one yet.
func setFinderFlag(path string, flag uint16) error {
	info := make([]byte, finderInfoSize)
	if n, err := unix.Getxattr(path, finderInfoAttr, info); err != nil || n != finderInfoSize {
		// No usable record on the file yet; start from zeros.
		info = make([]byte, finderInfoSize)
	}
	return unix.Setxattr(path, finderInfoAttr, applyFinderFlag(info, flag), 0)
}

// applyFinderFlag returns the record with the flag bit set. The input slice
// is modified in place; it must be finderInfoSize bytes long.
func applyFinderFlag(info []byte, flag uint16) []byte {
	flags := binary.BigEndian.Uint16(info[finderFlagsOffset:])
	binary.BigEndian.PutUint16(info[finderFlagsOffset:], flags|flag)
	return info
}
