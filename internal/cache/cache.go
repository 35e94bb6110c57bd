// Package cache holds the two-tier resource-list cache: an in-memory map
// gated by a short freshness window, backed by a JSON snapshot on disk that
// survives restarts under its own, separate TTL.
package cache

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

const (
	// MemoryTTL is how long a memory entry may satisfy an explicit lookup.
	MemoryTTL = 60 * time.Second
	// DiskTTL is how long a persisted entry survives across restarts.
	DiskTTL = 30 * time.Second

	resourcesFile = "resources.json"

	// Simple list caches readable via ReadList/WriteList.
	NamespacesList   = "namespaces.json"
	APIResourcesList = "apis.json"

	keySeparator = "|"
)

// Key identifies a cached resource listing.
type Key struct {
	Namespace string
	Kind      string
}

type entry struct {
	capturedAt time.Time // monotonic
	lines      []string
}

// diskSnapshot is the persisted form of the whole cache map.
type diskSnapshot struct {
	Entries map[string]diskEntry `json:"entries"`
}

type diskEntry struct {
	CapturedAt int64    `json:"captured_at"` // unix seconds
	Lines      []string `json:"lines"`
}

// Store is the resource-list cache. All map mutation happens on the UI
// goroutine; persistence runs on background goroutines against copied
// snapshots only.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]entry

	d  *diskv.Diskv // nil when no cache dir could be resolved
	wg sync.WaitGroup

	memoryTTL time.Duration
	diskTTL   time.Duration
	now       func() time.Time
}

// Open creates a Store persisted under basePath and loads the surviving
// entries from the previous run. An empty basePath yields a memory-only
// store; so does any storage failure later on.
func Open(basePath string) *Store {
	s := &Store{
		entries:   make(map[Key]entry),
		memoryTTL: MemoryTTL,
		diskTTL:   DiskTTL,
		now:       time.Now,
	}
	if basePath != "" {
		s.d = diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		})
	}
	s.loadFromDisk()
	return s
}

// Lookup returns the cached lines for (namespace, kind) if the entry is
// still fresh. The timestamp is not refreshed.
func (s *Store) Lookup(namespace, kind string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[Key{namespace, kind}]
	if !ok || s.now().Sub(e.capturedAt) >= s.memoryTTL {
		return nil, false
	}
	return e.lines, true
}

// Put overwrites the entry for (namespace, kind) with the current timestamp
// and schedules a write-through of the whole map to disk. The file write runs
// on a background goroutine; Flush waits for it.
func (s *Store) Put(namespace, kind string, lines []string) {
	s.mu.Lock()
	s.entries[Key{namespace, kind}] = entry{capturedAt: s.now(), lines: lines}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.persist(snap)
	}()
}

// Clear empties the memory tier and immediately persists the empty map.
// Used on full metadata refresh and context switch.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = make(map[Key]entry)
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// Flush waits for pending background writes. Call before process exit.
func (s *Store) Flush() {
	s.wg.Wait()
}

// Len returns the number of memory entries, fresh or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// snapshotLocked converts the memory map to its persisted form. Callers must
// hold mu.
func (s *Store) snapshotLocked() diskSnapshot {
	now := s.now()
	nowUnix := now.Unix()
	snap := diskSnapshot{Entries: make(map[string]diskEntry, len(s.entries))}
	for key, e := range s.entries {
		age := int64(now.Sub(e.capturedAt).Seconds())
		if age < 0 {
			age = 0
		}
		snap.Entries[key.Namespace+keySeparator+key.Kind] = diskEntry{
			CapturedAt: nowUnix - age,
			Lines:      e.lines,
		}
	}
	return snap
}

func (s *Store) persist(snap diskSnapshot) {
	if s.d == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		slog.Debug("cache: marshal snapshot", "error", err)
		return
	}
	if err := s.d.Write(resourcesFile, data); err != nil {
		slog.Debug("cache: write snapshot", "error", err)
	}
}

// loadFromDisk reads the persisted map, drops entries older than the disk
// TTL, and reconstructs monotonic timestamps from the wall-clock age.
func (s *Store) loadFromDisk() {
	if s.d == nil {
		return
	}
	data, err := s.d.Read(resourcesFile)
	if err != nil {
		return
	}
	var snap diskSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		slog.Debug("cache: corrupt snapshot ignored", "error", err)
		return
	}
	now := s.now()
	nowUnix := now.Unix()
	for key, de := range snap.Entries {
		age := nowUnix - de.CapturedAt
		if age < 0 {
			age = 0 // tolerate clock drift
		}
		if time.Duration(age)*time.Second >= s.diskTTL {
			continue
		}
		namespace, kind, ok := strings.Cut(key, keySeparator)
		if !ok {
			continue
		}
		s.entries[Key{namespace, kind}] = entry{
			capturedAt: now.Add(-time.Duration(age) * time.Second),
			lines:      de.Lines,
		}
	}
}

// ReadList returns a persisted simple list (namespaces or kinds) from the
// previous run, if any.
func (s *Store) ReadList(name string) ([]string, bool) {
	if s.d == nil {
		return nil, false
	}
	data, err := s.d.Read(name)
	if err != nil {
		return nil, false
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Debug("cache: corrupt list ignored", "name", name, "error", err)
		return nil, false
	}
	return items, true
}

// WriteList persists a simple list. Failures are swallowed: the cache only
// ever degrades, it never fails the caller.
func (s *Store) WriteList(name string, items []string) {
	if s.d == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.d.Write(name, data); err != nil {
		slog.Debug("cache: write list", "name", name, "error", err)
	}
}
