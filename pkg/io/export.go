package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/framecode/pkg/errors"
)

// WriteDocument encodes a document and writes it to w.
// The output can be re-read with [ReadDocument].
func WriteDocument(d *Document, w io.Writer, format Format) error {
	out := fromDocument(d)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported document format: %q", format)
	}
	return nil
}

// ExportDocument writes a document to path, choosing the format by
// extension.
func ExportDocument(d *Document, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDocument(d, f, format)
}

// Artifacts is the rendered output of one conversion.
type Artifacts struct {
	Markup        string
	MarkupExt     string
	Stylesheet    string
	StylesheetExt string
}

// WriteArtifacts writes <base>.<markup ext> and <base>.<stylesheet ext> into
// dir, creating dir if needed. It returns the written paths.
func WriteArtifacts(dir, base string, a Artifacts) ([]string, error) {
	if err := errors.ValidateBaseName(base); err != nil {
		return nil, err
	}
	if dir == "" {
		dir = "."
	}
	if err := errors.ValidatePath(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	files := []struct{ ext, content string }{
		{a.MarkupExt, a.Markup},
		{a.StylesheetExt, a.Stylesheet},
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, base+"."+f.ext)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
