package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
)

// Processor is one payment processor flavor the bridge can dispatch to
type Processor interface {
	Name() models.ProcessorKind
	ProcessPayment(ctx context.Context, bundle models.RequestBundle) (*models.PaymentOutcome, error)
	CheckConfig() error
	FormFields() []models.FormField
}

// Registry holds the configured processors keyed by kind. Lookups are plain
// keyed reads; there is no process-wide singleton.
type Registry struct {
	mu         sync.RWMutex
	processors map[models.ProcessorKind]Processor
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		processors: make(map[models.ProcessorKind]Processor),
	}
}

// Register adds a processor. Registering the same kind twice is a wiring
// mistake and fails loudly.
func (r *Registry) Register(p Processor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind := p.Name()
	if _, exists := r.processors[kind]; exists {
		return fmt.Errorf("processor %q is already registered", kind)
	}
	r.processors[kind] = p
	return nil
}

// Get returns the processor for kind
func (r *Registry) Get(kind models.ProcessorKind) (Processor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.processors[kind]
	if !ok {
		return nil, fmt.Errorf("unknown processor %q", kind)
	}
	return p, nil
}

// Kinds lists the registered processor kinds in stable order
func (r *Registry) Kinds() []models.ProcessorKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]models.ProcessorKind, 0, len(r.processors))
	for kind := range r.processors {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
