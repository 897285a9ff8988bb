// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"

	"github.com/pdiddy/std2yass/pkg/types"
)

// ConvertFile converts the figure at inPath into outPath. The output file is
// created only after the whole input has parsed, so a malformed figure
// leaves an existing outPath untouched.
func ConvertFile(inPath, outPath string, cfg types.ConversionConfig) error {
	p, err := ParseFile(inPath, cfg)
	if err != nil {
		return err
	}
	return WriteFile(outPath, p, cfg)
}

// ParseFile parses the figure stored at path. Parse errors are prefixed
// with the path.
func ParseFile(path string, cfg types.ConversionConfig) (*types.Piece, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	p, err := Parse(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// WriteFile writes p to path in yass layer format, replacing any existing
// file.
func WriteFile(path string, p *types.Piece, cfg types.ConversionConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := Write(f, p, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
