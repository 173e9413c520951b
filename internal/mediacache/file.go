package mediacache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/metafates/gache"
	"github.com/spf13/afero"

	"marquee/internal/logging"
)

var collectionNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

type document = map[string]json.RawMessage

// FileStore keeps each collection in one JSON document file under dir.
// Every Put rewrites the collection file.
type FileStore struct {
	fs     afero.Fs
	dir    string
	logger *slog.Logger

	mu          sync.RWMutex
	collections map[string]*gache.Cache[document]
	closed      bool
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates dir on fsys if needed. Collection files are created
// lazily on first Put.
func NewFileStore(fsys afero.Fs, dir string, logger *slog.Logger) (*FileStore, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("file cache directory required")
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return &FileStore{
		fs:          fsys,
		dir:         dir,
		logger:      logging.NewComponentLogger(logger, "mediacache"),
		collections: make(map[string]*gache.Cache[document]),
	}, nil
}

func (f *FileStore) cacheFor(collection string) (*gache.Cache[document], error) {
	if !collectionNamePattern.MatchString(collection) {
		return nil, fmt.Errorf("invalid collection name %q", collection)
	}
	if c, ok := f.collections[collection]; ok {
		return c, nil
	}
	c := gache.New[document](&gache.Options{
		Path:       filepath.Join(f.dir, collection+".json"),
		FileSystem: gacheFs{fs: f.fs},
	})
	f.collections[collection] = c
	return c, nil
}

func (f *FileStore) load(collection string) (document, error) {
	c, err := f.cacheFor(collection)
	if err != nil {
		return nil, err
	}
	doc, expired, err := c.Get()
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}
	if expired || doc == nil {
		return document{}, nil
	}
	return doc, nil
}

func (f *FileStore) Get(_ context.Context, collection, key string) (json.RawMessage, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, false, ErrClosed
	}
	doc, err := f.load(collection)
	if err != nil {
		return nil, false, err
	}
	value, ok := doc[key]
	return value, ok, nil
}

func (f *FileStore) Put(_ context.Context, collection, key string, value json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	doc, err := f.load(collection)
	if err != nil {
		return err
	}
	c, err := f.cacheFor(collection)
	if err != nil {
		return err
	}
	next := maps.Clone(doc)
	next[key] = append(json.RawMessage(nil), value...)
	if err := c.Set(next); err != nil {
		// gache swaps its in-memory value before writing, so restore the
		// previous document to keep reads consistent with disk.
		_ = c.Set(doc)
		return fmt.Errorf("persist collection %s: %w", collection, err)
	}
	f.logger.Debug("persisted cache entry",
		logging.String(logging.FieldCollection, collection),
		logging.String(logging.FieldCacheKey, key),
		logging.Int("entries", len(next)))
	return nil
}

func (f *FileStore) Keys(_ context.Context, collection string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrClosed
	}
	doc, err := f.load(collection)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *FileStore) Count(ctx context.Context, collection string) (int, error) {
	keys, err := f.Keys(ctx, collection)
	return len(keys), err
}

func (f *FileStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// gacheFs adapts an afero filesystem to gache.FileSystem.
type gacheFs struct {
	fs afero.Fs
}

func (g gacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return g.fs.OpenFile(name, flag, perm)
}

func (g gacheFs) MkdirAll(path string, perm os.FileMode) error {
	return g.fs.MkdirAll(path, perm)
}
