package ingredient

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Registry holds every loaded ingredient identity, keyed by stable ID.
// Entries are long-lived: created at load time and never removed during a
// session.
type Registry struct {
	order  []ID
	byID   map[ID]*Identity
	logger *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		byID:   make(map[ID]*Identity),
		logger: logger,
	}
}

// Register adds an identity to the registry. It fails on an empty or
// duplicate ID; self-referential processing entries are nulled with a
// warning rather than rejected, so one authoring mistake does not drop the
// whole identity.
func (r *Registry) Register(def *Identity) error {
	if def == nil {
		return fmt.Errorf("nil identity")
	}
	if def.ID.IsZero() {
		return fmt.Errorf("identity has empty id")
	}
	if strings.Contains(string(def.ID), "+") {
		// "+" joins the canonical combination keys; an ID carrying it
		// would let two different ingredient pairs share a key.
		return fmt.Errorf("identity id %q contains reserved character %q", def.ID, "+")
	}
	if _, exists := r.byID[def.ID]; exists {
		return fmt.Errorf("duplicate identity id %q", def.ID)
	}

	for op, result := range def.Processing {
		if !op.IsValid() {
			r.logger.Warn("Dropping unknown processing operation",
				zap.String("ingredient", string(def.ID)),
				zap.String("operation", string(op)))
			delete(def.Processing, op)
			continue
		}
		if result == def.ID {
			// Self-loop transformations would make Transform a no-op
			// that still consumes a pool slot. Null them out.
			r.logger.Warn("Nulling self-referential processing result",
				zap.String("ingredient", string(def.ID)),
				zap.String("operation", string(op)))
			delete(def.Processing, op)
		}
	}

	r.byID[def.ID] = def
	r.order = append(r.order, def.ID)
	return nil
}

// Get returns the identity for id, if registered.
func (r *Registry) Get(id ID) (*Identity, bool) {
	def, ok := r.byID[id]
	return def, ok
}

// All returns every identity in authored order.
func (r *Registry) All() []*Identity {
	out := make([]*Identity, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of registered identities.
func (r *Registry) Len() int {
	return len(r.byID)
}

// Audit returns every authoring problem still present after loading:
// processing results that reference unknown identities, and inedible
// identities with no processing path (dead ends that can never be served).
func (r *Registry) Audit() []string {
	var problems []string
	for _, id := range r.order {
		def := r.byID[id]
		for op, result := range def.Processing {
			if _, ok := r.byID[result]; !ok {
				problems = append(problems, fmt.Sprintf(
					"ingredient %q: %s result references unknown identity %q",
					id, op, result))
			}
		}
		if !def.Edible && len(def.Processing) == 0 {
			problems = append(problems, fmt.Sprintf(
				"ingredient %q: inedible with no processing results (dead end)", id))
		}
	}
	return problems
}

// LoadFile reads an authored JSON array of identities and builds a registry.
// Invalid entries are skipped with a warning; only unreadable or unparsable
// files are errors.
func LoadFile(path string, logger *zap.Logger) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingredient definitions: %w", err)
	}
	return Parse(data, logger)
}

// Parse builds a registry from raw authored JSON.
func Parse(data []byte, logger *zap.Logger) (*Registry, error) {
	var defs []*Identity
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ingredient definitions: %w", err)
	}

	reg := NewRegistry(logger)
	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			reg.logger.Warn("Skipping invalid ingredient definition", zap.Error(err))
		}
	}
	return reg, nil
}
