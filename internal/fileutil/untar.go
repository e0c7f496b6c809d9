// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package fileutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mholt/archives"
)

// Untar extracts a tar.gz stream into destPath, which must already exist.
// Source distributions are plain files and directories, so anything else in
// the archive (device nodes, symlinks) is rejected.
func Untar(ctx context.Context, archive io.Reader, destPath string) error {
	_, err := os.Stat(destPath)
	if err != nil {
		return err
	}

	format := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
		Extraction:  archives.Tar{},
	}

	handler := func(ctx context.Context, fromFile archives.FileInfo) error {
		rel := filepath.Clean(fromFile.NameInArchive)
		abs := filepath.Join(destPath, rel)

		mode := fromFile.Mode()
		switch {
		case mode.IsRegular():
			return untarFile(fromFile, abs)
		case mode.IsDir():
			return os.MkdirAll(abs, 0o755)
		default:
			return fmt.Errorf("archive contained entry %s of unsupported file type %v", fromFile.Name(), mode)
		}
	}

	return format.Extract(ctx, archive, handler)
}

func untarFile(fromFile archives.FileInfo, abs string) error {
	fromReader, err := fromFile.Open()
	if err != nil {
		return err
	}
	defer fromReader.Close()

	// Some sdist tarballs omit directory entries, so the parent may not
	// exist yet.
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}

	toWriter, err := os.OpenFile(abs, os.O_RDWR|os.O_CREATE|os.O_TRUNC, fromFile.Mode().Perm())
	if err != nil {
		return err
	}
	numBytes, err := io.Copy(toWriter, fromReader)
	if closeErr := toWriter.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("error writing to %s: %v", abs, err)
	}
	if numBytes != fromFile.Size() {
		return fmt.Errorf("only wrote %d bytes to %s; expected %d", numBytes, abs, fromFile.Size())
	}
	return nil
}
