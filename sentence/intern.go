package sentence

import (
	"log/slog"
	"sync"

	"github.com/cottand/worlds/internal/log"
)

// atomKey is the structural identity of an Atom
type atomKey struct {
	kind         Kind
	partitioning Partitioning
	part         Part
}

// Registry canonicalises atoms: for any key it hands out exactly one instance
// for as long as the Registry lives, including under concurrent first use.
// Atoms are never removed.
//
// The zero value is not usable, use NewRegistry.
type Registry struct {
	mu     sync.RWMutex
	atoms  map[atomKey]Atom
	logger *slog.Logger
}

type RegistryOption func(*Registry)

func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		atoms:  make(map[atomKey]Atom),
		logger: log.DefaultLogger.With("section", "intern"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the process-wide Registry used by the package-level constructors
var Default = NewRegistry()

// intern returns the atom registered under key, registering the result of mk
// if there is none yet
func (r *Registry) intern(key atomKey, mk func() Atom) Atom {
	r.mu.RLock()
	atom, ok := r.atoms[key]
	r.mu.RUnlock()
	if ok {
		return atom
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// another caller may have won the race between the two locks
	if atom, ok := r.atoms[key]; ok {
		return atom
	}
	atom = mk()
	r.atoms[key] = atom
	r.logger.Debug("interned atom", "atom", LogValue(atom), "registered", len(r.atoms))
	return atom
}

func (r *Registry) Top() *Top {
	return r.intern(atomKey{kind: KindTop}, func() Atom {
		return &Top{hash: topHash}
	}).(*Top)
}

func (r *Registry) Bottom() *Bottom {
	return r.intern(atomKey{kind: KindBottom}, func() Atom {
		return &Bottom{hash: bottomHash}
	}).(*Bottom)
}

// Label returns the canonical label for (partitioning, part)
func (r *Registry) Label(partitioning Partitioning, part Part) *Label {
	key := atomKey{kind: KindLabel, partitioning: partitioning, part: part}
	return r.intern(key, func() Atom {
		return newLabel(partitioning, part)
	}).(*Label)
}

// Len returns the number of atoms interned so far
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.atoms)
}

// True returns the Top of the Default registry
func True() *Top { return Default.Top() }

// False returns the Bottom of the Default registry
func False() *Bottom { return Default.Bottom() }

// LabelOf returns the canonical label of the Default registry
func LabelOf(partitioning Partitioning, part Part) *Label {
	return Default.Label(partitioning, part)
}
