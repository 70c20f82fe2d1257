package i18n

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
)

// TranslationAdapter loads catalogs keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs held in memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single catalog file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	return readCatalog(ctx, a.parser, a.path)
}

// DirectoryAdapter loads and merges every file in a directory the parser
// supports. Later files override earlier keys for the same language.
type DirectoryAdapter struct {
	parser Parser
	path   string
}

// NewDirectoryAdapter returns nil if parser is nil or path is empty.
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &DirectoryAdapter{parser: parser, path: path}
}

func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	info, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, errors.Join(ErrFailedToAccessDirectory, fmt.Errorf("%q is not a directory", a.path))
	}

	entries, err := os.ReadDir(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(filepath.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		catalog, err := readCatalog(ctx, a.parser, filepath.Join(a.path, entry.Name()))
		if err != nil {
			return nil, err
		}
		for lang, translations := range catalog {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(translations))
			}
			maps.Copy(all[lang], translations)
		}
	}

	if len(all) == 0 {
		return nil, errors.Join(ErrNoTranslationsFound, fmt.Errorf("directory %q", a.path))
	}
	return all, nil
}

func readCatalog(ctx context.Context, parser Parser, path string) (map[string]map[string]any, error) {
	if parser == nil || path == "" {
		return nil, fmt.Errorf("adapter is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("translation file %q is empty", path))
	}

	catalog, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return catalog, nil
}

// NewAdapterForPath returns a DirectoryAdapter reading YAML catalogs when path
// is a directory, otherwise a FileAdapter with the parser matching the file
// extension.
func NewAdapterForPath(path string) (TranslationAdapter, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if info.IsDir() {
		return NewDirectoryAdapter(NewYAMLParser(), path), nil
	}

	parser := NewParserForFile(path)
	if parser == nil {
		return nil, errors.Join(ErrUnsupportedFile, fmt.Errorf("%q", path))
	}
	return NewFileAdapter(parser, path), nil
}
