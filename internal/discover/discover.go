// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover walks an input directory and selects the TwinCAT source
// files to document, in a deterministic order.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdiddy/tcdoc/pkg/types"
)

// Files walks root and returns a descriptor for every file with one of the
// four supported extensions, sorted lexicographically by relative path so
// repeated runs over unchanged input produce identical chapter ordering.
// Files with other extensions are silently skipped. No file content is
// read here; the extractor reads each file one at a time.
func Files(root string) ([]types.SourceFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrInputNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", types.ErrInputNotFound, root)
	}

	var files []types.SourceFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		kind, ok := types.KindForExtension(filepath.Ext(path))
		if !ok {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, types.SourceFile{
			Path:    path,
			RelPath: filepath.ToSlash(rel),
			Kind:    kind,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})
	return files, nil
}
