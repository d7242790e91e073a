package protocol

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/kcc/internal/common"
	"github.com/dmitrijs2005/kcc/internal/logging"
	"github.com/dmitrijs2005/kcc/internal/models"
)

// Registry selects a backend for a host from a fixed, ordered list.
type Registry struct {
	backends []Backend
	log      logging.Logger
}

func NewRegistry(log logging.Logger, backends ...Backend) *Registry {
	return &Registry{backends: backends, log: log}
}

// DefaultRegistry knows the file backend only.
func DefaultRegistry(log logging.Logger) *Registry {
	return NewRegistry(log, NewFileBackend(log))
}

// Select returns the first backend accepting host.
func (r *Registry) Select(host models.Host) (Backend, error) {
	for _, b := range r.backends {
		if b.Accept(host) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: unable to find a backend that accepts the scheme '%s'", common.ErrConfiguration, host.Scheme())
}

// Connect selects a backend for host and binds it.
func (r *Registry) Connect(ctx context.Context, host models.Host) (Session, error) {
	b, err := r.Select(host)
	if err != nil {
		return nil, err
	}

	s, err := b.Connect(ctx, host)
	if err != nil {
		return nil, err
	}

	r.log.Debug(ctx, "session opened", "backend", b.Name(), "host", host.String(), "session", s.ID())
	return s, nil
}
