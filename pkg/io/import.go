package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/framecode/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var validate = validator.New()

// FormatFromPath returns the document format for a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported document format: %s (must be .json, .yaml or .yml)", path)
}

// ReadDocument decodes a document from r.
//
// ReadDocument returns an INVALID_FORMAT error if the input cannot be
// decoded and an INVALID_DOCUMENT error if:
//   - A node is missing its id or type
//   - A size, radius or font metric is negative
//   - An opacity or color channel is outside [0, 1]
//   - A declared flow mode is unknown
//   - Two nodes share an id
//
// ReadDocument does not close r.
func ReadDocument(r io.Reader, format Format) (*Document, error) {
	var data document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&data); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&data); err != nil {
			if err == io.EOF {
				return &Document{}, nil
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format: %q", format)
	}

	if err := validateDocument(&data); err != nil {
		return nil, err
	}
	return data.toDocument(), nil
}

// ImportDocument reads a document file, choosing the format by extension.
func ImportDocument(path string) (*Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDocument(f, format)
}

// =============================================================================
// Validation
// =============================================================================

func validateDocument(d *document) error {
	if err := validate.Struct(d); err != nil {
		return errors.New(errors.ErrCodeInvalidDocument, "%s", validationMessage(err))
	}

	seen := make(map[string]bool)
	var check func(list []*node) error
	check = func(list []*node) error {
		for _, n := range list {
			if err := errors.ValidateNodeID(n.ID); err != nil {
				return errors.AtNode(n.ID, err)
			}
			if seen[n.ID] {
				return errors.New(errors.ErrCodeInvalidDocument, "duplicate node id %s", n.ID)
			}
			seen[n.ID] = true
			if err := check(n.Children); err != nil {
				return err
			}
		}
		return nil
	}
	return check(d.Nodes)
}

// validationMessage converts validator errors into one readable line.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "document.")
		var msg string
		switch e.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", field)
		case "gte":
			msg = fmt.Sprintf("%s must be at least %s", field, e.Param())
		case "lte":
			msg = fmt.Sprintf("%s must be at most %s", field, e.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", field, e.Param())
		case "oneof":
			msg = fmt.Sprintf("%s must be one of: %s", field, e.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", field)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}
