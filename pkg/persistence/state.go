package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/scenekit/scenekit-go/pkg/geom"
	"github.com/scenekit/scenekit-go/pkg/log"
	"github.com/scenekit/scenekit-go/pkg/record"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// Root attribute names stamped by Save.
const (
	AttrVersion = "version"
	AttrSavedAt = "savedAt"
)

// Element names used by SaveVectors.
const (
	vectorsRoot = "vectors"
	vectorTag   = "vector"
	vectorName  = "name"
)

// ErrUnsupportedVersion is returned when a state file was written by a newer
// format version.
var ErrUnsupportedVersion = errors.New("unsupported state version")

// StateStore manages persistence of a state document to a file.
// It is safe for concurrent use.
type StateStore struct {
	mu     sync.Mutex
	path   string
	format record.Format
	logger log.Logger
}

// NewStateStore creates a store for path. The encoding is chosen from the
// extension (see record.FormatFromPath).
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path, format: record.FormatFromPath(path)}
}

// SetLogger sets where attribute warnings raised while loading go.
// The default is log.Default().
func (s *StateStore) SetLogger(l log.Logger) {
	s.mu.Lock()
	s.logger = l
	s.mu.Unlock()
}

// Path returns the file path.
func (s *StateStore) Path() string { return s.path }

// Format returns the encoding used for the file.
func (s *StateStore) Format() record.Format { return s.format }

// Save persists root to disk. A copy of root is stamped with the format
// version and save time; root itself is not modified. The file is replaced
// atomically.
func (s *StateStore) Save(root *record.Element) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := root.Clone()
	if doc == nil {
		return fmt.Errorf("%w: nil state", record.ErrInvalidElement)
	}
	doc.SetInt(AttrVersion, StateVersion)
	doc.SetAttr(AttrSavedAt, time.Now().UTC().Format(time.RFC3339))

	data, err := record.Marshal(s.format, doc)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	if err := writeAndReplace(tmp, data, s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// writeAndReplace fills tmp with data and moves it over path. On error the
// caller removes tmp.
func writeAndReplace(tmp *os.File, data []byte, path string) error {
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads the state document from disk.
// Returns nil, nil if the file doesn't exist (empty state).
func (s *StateStore) Load() (*record.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	root, err := record.Unmarshal(s.format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to load state %s: %w", s.path, err)
	}

	if root.HasAttr(AttrVersion) {
		ver := record.Int(root, AttrVersion, StateVersion, log.WithScope(s.logger, "persistence", "Load"))
		if ver > StateVersion {
			return nil, fmt.Errorf("%w: %d (max %d)", ErrUnsupportedVersion, ver, StateVersion)
		}
	}
	return root, nil
}

// Clear removes the state file.
func (s *StateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// SaveVectors persists a set of named vectors, sorted by name, as
//
//	<vectors><vector x=".." y=".." z=".." name="sun"/>...</vectors>
func (s *StateStore) SaveVectors(vecs map[string]geom.Vec) error {
	names := make([]string, 0, len(vecs))
	for n := range vecs {
		names = append(names, n)
	}
	sort.Strings(names)

	root := record.NewElement(vectorsRoot)
	for _, n := range names {
		el := vecs[n].Record(vectorTag)
		el.SetAttr(vectorName, n)
		root.AddChild(el)
	}
	return s.Save(root)
}

// LoadVectors reads vectors saved by SaveVectors. Entries without a name are
// skipped with a warning; malformed components follow geom.FromRecord rules.
// A missing file yields an empty map.
func (s *StateStore) LoadVectors() (map[string]geom.Vec, error) {
	root, err := s.Load()
	if err != nil {
		return nil, err
	}
	out := make(map[string]geom.Vec)
	if root == nil {
		return out, nil
	}

	s.mu.Lock()
	logger := s.logger
	s.mu.Unlock()

	for i, el := range root.ChildrenNamed(vectorTag) {
		name, ok := el.Attr(vectorName)
		if !ok || name == "" {
			log.Warn(logger, log.Event{
				Component: "persistence",
				Operation: "LoadVectors",
				Attribute: vectorName,
				Value:     strconv.Itoa(i),
				Message:   "vector entry without a name skipped",
			})
			continue
		}
		out[name] = geom.FromRecordWithLogger(el, logger)
	}
	return out, nil
}
