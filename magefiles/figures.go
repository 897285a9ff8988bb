package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/std2yass/internal/convert"
	"github.com/pdiddy/std2yass/pkg/types"
)

// figuresDir holds SOMA figure files (*.std) and their yass conversions.
const figuresDir = "figures"

// Figures converts every figures/*.std file to figures/*.yass. A figure that
// fails to parse keeps its previous .yass file.
func Figures() error {
	paths, err := filepath.Glob(filepath.Join(figuresDir, "*.std"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Printf("No figures in %s/\n", figuresDir)
		return nil
	}

	failed := 0
	for _, in := range paths {
		out := strings.TrimSuffix(in, filepath.Ext(in)) + ".yass"
		if err := convert.ConvertFile(in, out, types.ConversionConfig{}); err != nil {
			fmt.Printf("failed:    %s (%v)\n", in, err)
			failed++
			continue
		}
		fmt.Printf("converted: %s\n", out)
	}
	if failed > 0 {
		return fmt.Errorf("%d figure(s) failed conversion", failed)
	}
	return nil
}
