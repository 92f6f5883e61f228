package component

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
)

// Store errors.
var (
	ErrComponentNotFound  = errors.New("component not found")
	ErrDuplicateComponent = errors.New("duplicate component type")
)

// StoreConfig holds store configuration.
type StoreConfig struct {
	// Name identifies the store in log output (typically the device name).
	Name string

	// Logger receives operational log output. Defaults to slog.Default().
	Logger *slog.Logger
}

// Store holds the components of one device connection and batches their
// change notifications.
type Store struct {
	mu sync.Mutex

	name   string
	logger *slog.Logger

	components map[Type]Component

	// Dirty set, kept in first-marked order.
	dirty      map[Type]struct{}
	dirtyOrder []Type

	// Observers per component type, and store-wide.
	observers    map[Type][]observerEntry
	allObservers []observerEntry
	nextObserver uint64

	onCommit func(types []Type)

	stats Stats
}

// Stats holds store counters.
type Stats struct {
	// DirtyMarks counts MarkDirty calls, including marks coalesced into an
	// already pending change.
	DirtyMarks uint64

	// Commits counts Commit calls that published at least one component.
	Commits uint64

	// Published counts component notifications published by commits.
	Published uint64
}

type observerEntry struct {
	id  uint64
	obs Observer
}

// NewStore creates an empty store with default configuration.
func NewStore() *Store {
	return NewStoreWithConfig(StoreConfig{})
}

// NewStoreWithConfig creates an empty store.
func NewStoreWithConfig(config StoreConfig) *Store {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		name:       config.Name,
		logger:     logger,
		components: make(map[Type]Component),
		dirty:      make(map[Type]struct{}),
		observers:  make(map[Type][]observerEntry),
	}
}

// Add registers a component. It returns ErrDuplicateComponent if a component
// of the same type is already registered.
func (s *Store) Add(c Component) error {
	t := c.Descriptor().Type

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[t]; exists {
		return ErrDuplicateComponent
	}
	s.components[t] = c
	s.logger.Debug("component added", "store", s.name, "component", t.String())
	return nil
}

// Remove unregisters a component and drops any pending change for it.
func (s *Store) Remove(t Type) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[t]; !exists {
		return ErrComponentNotFound
	}
	delete(s.components, t)
	s.dropDirtyLocked(t)
	s.logger.Debug("component removed", "store", s.name, "component", t.String())
	return nil
}

// Get returns the component of the given type.
func (s *Store) Get(t Type) (Component, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.components[t]
	if !exists {
		return nil, ErrComponentNotFound
	}
	return c, nil
}

// Components returns all registered components ordered by type.
func (s *Store) Components() []Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

// Count returns the number of registered components.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.components)
}

// MarkDirty queues a component for the next commit.
// Marking an already dirty component has no further effect.
func (s *Store) MarkDirty(t Type) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.DirtyMarks++
	if _, pending := s.dirty[t]; pending {
		return
	}
	s.dirty[t] = struct{}{}
	s.dirtyOrder = append(s.dirtyOrder, t)
}

// IsDirty reports whether the component has uncommitted changes.
func (s *Store) IsDirty(t Type) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, pending := s.dirty[t]
	return pending
}

// PendingCount returns the number of components waiting for commit.
func (s *Store) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dirtyOrder)
}

// Commit drains the dirty set and notifies observers once per changed
// component, in the order the components were first marked. It returns the
// number of components published. Changes marked by observers during the
// commit are deferred to the next commit.
func (s *Store) Commit() int {
	s.mu.Lock()
	order := s.dirtyOrder
	s.dirtyOrder = nil
	s.dirty = make(map[Type]struct{})

	type delivery struct {
		component Component
		observers []observerEntry
	}
	deliveries := make([]delivery, 0, len(order))
	published := make([]Type, 0, len(order))
	for _, t := range order {
		c, exists := s.components[t]
		if !exists {
			continue
		}
		obs := make([]observerEntry, 0, len(s.observers[t])+len(s.allObservers))
		obs = append(obs, s.observers[t]...)
		obs = append(obs, s.allObservers...)
		deliveries = append(deliveries, delivery{component: c, observers: obs})
		published = append(published, t)
	}
	if len(published) > 0 {
		s.stats.Commits++
		s.stats.Published += uint64(len(published))
	}
	onCommit := s.onCommit
	s.mu.Unlock()

	if len(published) == 0 {
		return 0
	}

	// Notify outside the lock so observers may read or mark components.
	for _, d := range deliveries {
		for _, e := range d.observers {
			e.obs.OnComponentChanged(d.component)
		}
	}

	if onCommit != nil {
		onCommit(published)
	}
	return len(published)
}

// Stats returns a snapshot of the store counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Subscribe registers an observer for one component type. The returned
// function removes the observer; calling it more than once is harmless.
func (s *Store) Subscribe(t Type, obs Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextObserver++
	id := s.nextObserver
	s.observers[t] = append(s.observers[t], observerEntry{id: id, obs: obs})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.observers[t] = removeEntry(s.observers[t], id)
		if len(s.observers[t]) == 0 {
			delete(s.observers, t)
		}
	}
}

// SubscribeAll registers an observer for every component in the store.
func (s *Store) SubscribeAll(obs Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextObserver++
	id := s.nextObserver
	s.allObservers = append(s.allObservers, observerEntry{id: id, obs: obs})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.allObservers = removeEntry(s.allObservers, id)
	}
}

// OnCommit sets a callback invoked after each non-empty commit with the
// published component types.
func (s *Store) OnCommit(fn func(types []Type)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCommit = fn
}

// ResetAll resets every registered component and marks each dirty, so the
// next commit publishes the disconnected state. Used on connection teardown.
func (s *Store) ResetAll() {
	s.mu.Lock()
	components := s.sortedLocked()
	s.mu.Unlock()

	for _, c := range components {
		c.Reset()
		s.MarkDirty(c.Descriptor().Type)
	}
	s.logger.Debug("components reset", "store", s.name, "count", len(components))
}

// Clear removes all components and drops pending changes. Observers stay
// registered.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.components = make(map[Type]Component)
	s.dirty = make(map[Type]struct{})
	s.dirtyOrder = nil
}

func (s *Store) dropDirtyLocked(t Type) {
	if _, pending := s.dirty[t]; !pending {
		return
	}
	delete(s.dirty, t)
	for i, d := range s.dirtyOrder {
		if d == t {
			s.dirtyOrder = append(s.dirtyOrder[:i], s.dirtyOrder[i+1:]...)
			break
		}
	}
}

func (s *Store) sortedLocked() []Component {
	result := make([]Component, 0, len(s.components))
	for _, c := range s.components {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Descriptor().Type < result[j].Descriptor().Type
	})
	return result
}

func removeEntry(entries []observerEntry, id uint64) []observerEntry {
	for i, e := range entries {
		if e.id == id {
			return append(entries[:i], entries[i+1:]...)
		}
	}
	return entries
}
