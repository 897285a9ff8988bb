// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/std2yass/pkg/types"
)

func writeFigure(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name     string
		figure   string
		existing string // content of outPath before the run, if any
		wantOut  string
		wantErr  error
	}{
		{
			name:    "writes new file",
			figure:  "/SOMA 1\n/oo/..\n/o./..\n",
			wantOut: "oo\no.\n\n..\n..\n",
		},
		{
			name:     "replaces existing file",
			figure:   "/o.\n",
			existing: "old\n",
			wantOut:  "o.\n",
		},
		{
			name:     "height mismatch leaves existing file",
			figure:   "/ooo/ooo\n/ooo\n",
			existing: "old\n",
			wantOut:  "old\n",
			wantErr:  &HeightMismatchError{},
		},
		{
			name:     "no data leaves existing file",
			figure:   "; comment only\n",
			existing: "old\n",
			wantOut:  "old\n",
			wantErr:  ErrNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			inPath := writeFigure(t, dir, "piece.std", tt.figure)
			outPath := filepath.Join(dir, "piece.yass")
			if tt.existing != "" {
				writeFigure(t, dir, "piece.yass", tt.existing)
			}

			err := ConvertFile(inPath, outPath, types.ConversionConfig{})

			switch want := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
			case *HeightMismatchError:
				require.True(t, errors.As(err, &want), "error %v is not a HeightMismatchError", err)
				assert.Contains(t, err.Error(), inPath)
			default:
				require.ErrorIs(t, err, want)
			}

			data, err := os.ReadFile(outPath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, string(data))
		})
	}
}

func TestConvertFile_FailedParseCreatesNothing(t *testing.T) {
	dir := t.TempDir()
	inPath := writeFigure(t, dir, "bad.std", "/oooo/oooo\n/ooo/oooo\n")
	outPath := filepath.Join(dir, "bad.yass")

	var wErr *WidthMismatchError
	require.True(t, errors.As(ConvertFile(inPath, outPath, types.ConversionConfig{}), &wErr))

	_, err := os.Stat(outPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.std"), types.ConversionConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "opening input")
}

func TestWriteFile_BadDirectory(t *testing.T) {
	p := &types.Piece{Layers: [][]string{{"o"}}, Width: 1, Height: 1, Depth: 1}
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.yass"), p, types.ConversionConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output")
}
