package runtime

import (
	"sync"

	"github.com/simplespec-labs/simplespec/internal/logging"
)

// Constructor builds a runtime variant around the base the Registry created
// for it.
type Constructor func(base Base) Runtime

// Info describes a registered runtime.
type Info struct {
	ID              string `json:"id"`
	DisplayName     string `json:"display_name"`
	InstallRootPath string `json:"install_root_path"`
}

type descriptor struct {
	info Info
	ctor Constructor
}

// Registry maps runtime identifiers to descriptors and caches one instance
// per identifier.
type Registry struct {
	mu          sync.Mutex
	order       []string
	descriptors map[string]descriptor
	instances   map[string]Runtime
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]descriptor),
		instances:   make(map[string]Runtime),
	}
}

// Register adds or replaces the descriptor for id. A replaced descriptor
// keeps its original position in ListAvailable. A nil ctor registers a plain
// Base. Empty identifiers are ignored.
func (r *Registry) Register(id, displayName, installRootPath string, ctor Constructor) {
	if id == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[id]; !exists {
		r.order = append(r.order, id)
	}
	r.descriptors[id] = descriptor{
		info: Info{ID: id, DisplayName: displayName, InstallRootPath: installRootPath},
		ctor: ctor,
	}
}

// ListAvailable returns the registered runtimes in registration order.
func (r *Registry) ListAvailable() []Info {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Info, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.descriptors[id].info)
	}
	return out
}

// Lookup returns the descriptor info for id.
func (r *Registry) Lookup(id string) (Info, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.descriptors[id]
	return d.info, ok
}

// Get returns the instance for id, constructing and caching it on first use.
func (r *Registry) Get(id string) (Runtime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rt, ok := r.instances[id]; ok {
		return rt, nil
	}

	d, ok := r.descriptors[id]
	if !ok {
		return nil, &UnregisteredRuntimeError{ID: id}
	}

	base := Base{id: d.info.ID, displayName: d.info.DisplayName, dir: d.info.InstallRootPath}
	var rt Runtime = base
	if d.ctor != nil {
		rt = d.ctor(base)
	}
	r.instances[id] = rt
	return rt, nil
}

// InstallAll installs the runtimes named by ids in order, stopping at the
// first failure.
func (r *Registry) InstallAll(s *Session, ids []string) error {
	log := logging.GetLogger("runtime")
	for _, id := range ids {
		rt, err := r.Get(id)
		if err != nil {
			return err
		}
		if err := rt.Install(s); err != nil {
			return err
		}
		log.Debug().Str("runtime", id).Msg("installed")
	}
	return nil
}
