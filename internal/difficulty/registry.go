package difficulty

import (
	"hash/fnv"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

const defaultShards = 16

type entry struct {
	mu     sync.Mutex
	engine *Engine
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// Registry owns one Engine per player. Shard locks guard only the maps;
// each player's engine has its own lock, so work for one player is
// serialized while other players proceed.
type Registry struct {
	shards  []shard
	factory func() *Engine
	logger  *log.Logger
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithShards sets the number of shards
func WithShards(n int) RegistryOption {
	return func(r *Registry) {
		if n > 0 {
			r.shards = make([]shard, n)
		}
	}
}

// WithRegistryLogger sets the logger used for lifecycle events
func WithRegistryLogger(l *log.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry creates an empty registry. factory builds the engine for a
// player on first contact; nil uses NewEngine with defaults.
func NewRegistry(factory func() *Engine, opts ...RegistryOption) *Registry {
	if factory == nil {
		factory = func() *Engine { return NewEngine() }
	}

	r := &Registry{
		shards:  make([]shard, defaultShards),
		factory: factory,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	for i := range r.shards {
		r.shards[i].entries = make(map[string]*entry)
	}
	return r
}

func (r *Registry) shardFor(playerID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(playerID))
	return &r.shards[h.Sum32()%uint32(len(r.shards))]
}

func (r *Registry) lookup(playerID string, create bool) *entry {
	s := r.shardFor(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[playerID]
	if !ok && create {
		e = &entry{engine: r.factory()}
		s.entries[playerID] = e
		r.logger.Debug("difficulty engine created", "player_id", playerID)
	}
	return e
}

// With runs fn with exclusive access to the player's engine, creating it on
// first contact.
func (r *Registry) With(playerID string, fn func(*Engine)) error {
	if playerID == "" {
		return ErrEmptyPlayerID
	}

	e := r.lookup(playerID, true)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.engine)
	return nil
}

// Peek runs fn with exclusive access to an existing engine. It reports
// false, without calling fn, when the player has none.
func (r *Registry) Peek(playerID string, fn func(*Engine)) bool {
	e := r.lookup(playerID, false)
	if e == nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.engine)
	return true
}

// Remove disposes of a player's engine
func (r *Registry) Remove(playerID string) bool {
	s := r.shardFor(playerID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[playerID]; !ok {
		return false
	}
	delete(s.entries, playerID)
	r.logger.Debug("difficulty engine removed", "player_id", playerID)
	return true
}

// Len returns the number of players with an engine
func (r *Registry) Len() int {
	n := 0
	for i := range r.shards {
		s := &r.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}
