// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/std2yass/internal/convert"
	"github.com/pdiddy/std2yass/pkg/types"
)

// stdioArg selects stdin or stdout in place of a file name.
const stdioArg = "-"

func runConvert(cmd *cobra.Command, args []string, cfg types.ConversionConfig) error {
	var inPath, outPath string
	if len(args) > 0 {
		inPath = args[0]
	}
	if len(args) > 1 {
		outPath = args[1]
	}
	return convertFile(inPath, outPath, cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
}

// convertFile converts inPath into outPath. An empty or "-" path selects
// stdin or stdout. The output file is created only after the whole input
// has parsed.
func convertFile(inPath, outPath string, stdin io.Reader, stdout io.Writer, cfg types.ConversionConfig) error {
	piece, err := readPiece(inPath, stdin, cfg)
	if err != nil {
		return err
	}

	if isStdio(outPath) {
		return convert.Write(stdout, piece, cfg)
	}
	if err := convert.WriteFile(outPath, piece, cfg); err != nil {
		return err
	}
	slog.Debug("wrote piece", "path", outPath)
	return nil
}

// readPiece parses the figure at inPath, or stdin when inPath selects it.
func readPiece(inPath string, stdin io.Reader, cfg types.ConversionConfig) (*types.Piece, error) {
	var (
		piece *types.Piece
		err   error
	)
	if isStdio(inPath) {
		inPath = "stdin"
		if piece, err = convert.Parse(stdin, cfg); err != nil {
			err = fmt.Errorf("stdin: %w", err)
		}
	} else {
		piece, err = convert.ParseFile(inPath, cfg)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("parsed piece", "input", inPath,
		"width", piece.Width, "depth", piece.Depth, "height", piece.Height)
	return piece, nil
}

func isStdio(path string) bool {
	return path == "" || path == stdioArg
}
