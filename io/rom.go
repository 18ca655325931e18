package io

import (
	"errors"
	"io/fs"
)

// Rom is a program image, copied verbatim into interpreter memory.
type Rom struct {
	Name string
	Data []byte
}

// ReadRom reads a program image from a file system.
// Images longer than limit bytes are rejected with ErrRomTooLarge;
// a limit of zero or less disables the check.
func ReadRom(fsys fs.FS, name string, limit int) (rom *Rom, err error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = errors.Join(ErrRomMissing, err)
		} else {
			err = errors.Join(ErrRomRead, err)
		}
		return
	}

	if info.IsDir() {
		err = errors.Join(ErrRomRead, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid})
		return
	}

	if limit > 0 && info.Size() > int64(limit) {
		err = ErrRomTooLarge
		return
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		err = errors.Join(ErrRomRead, err)
		return
	}

	if len(data) == 0 {
		err = ErrRomRead
		return
	}

	if limit > 0 && len(data) > limit {
		err = ErrRomTooLarge
		return
	}

	rom = &Rom{
		Name: name,
		Data: data,
	}

	return
}
