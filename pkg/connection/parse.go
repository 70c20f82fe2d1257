package connection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a settings document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.Join(ErrUnsupportedFormat, fmt.Errorf("%q", path))
}

// Parse decodes and validates connection settings.
func Parse(ctx context.Context, data []byte, format Format) (Database, error) {
	if err := ctx.Err(); err != nil {
		return Database{}, errors.Join(ErrParsingCancelled, err)
	}

	var db Database
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &db); err != nil {
			return Database{}, errors.Join(ErrFailedToParse, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &db); err != nil {
			return Database{}, errors.Join(ErrFailedToParse, err)
		}
	default:
		return Database{}, errors.Join(ErrUnsupportedFormat, fmt.Errorf("%q", format))
	}

	if err := db.Validate(); err != nil {
		return Database{}, err
	}
	return db, nil
}

// Load reads settings from a JSON or YAML file.
func Load(ctx context.Context, path string) (Database, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Database{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Database{}, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(ctx, data, format)
}
