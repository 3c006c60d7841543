// Package plugin registers the s3-call operation type with the operation registry for the lifetime of the plugin.
package plugin

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/greenvulcano/gvesb-s3"
	"github.com/greenvulcano/gvesb-s3/call/s3"
	"github.com/greenvulcano/gvesb-s3/operation"
	"github.com/greenvulcano/gvesb-s3/options"
)

// Activator is driven by the host's plugin lifecycle.
type Activator struct {
	logger zerolog.Logger
	opts   []options.NewCallOption[s3.Call]
}

// NewActivator returns an Activator whose supplier builds calls with opts.
func NewActivator(logger zerolog.Logger, opts ...options.NewCallOption[s3.Call]) *Activator {
	return &Activator{
		logger: logger.With().Str("plugin", s3.OperationType).Logger(),
		opts:   opts,
	}
}

// Start registers the s3-call supplier.
func (a *Activator) Start(_ context.Context) error {
	a.logger.Debug().Msg("Registering s3-call")
	operation.RegisterSupplier(s3.OperationType, a.supplier)
	return nil
}

// Stop unregisters the s3-call supplier. Instances already built keep working.
func (a *Activator) Stop(_ context.Context) error {
	a.logger.Debug().Msg("Unregistering s3-call")
	operation.UnregisterSupplier(s3.OperationType)
	return nil
}

func (a *Activator) supplier() gvesb.CallOperation {
	return s3.New(a.opts...)
}
