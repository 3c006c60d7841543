package s3

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/greenvulcano/gvesb-s3/options"
	"github.com/greenvulcano/gvesb-s3/utils"
)

const (
	optionNameClientFactory = "clientFactory"
	optionNameClientCache   = "clientCache"
	optionNameExpander      = "expander"
	optionNameLogger        = "logger"
	optionNameClock         = "clock"
)

// WithClientFactory returns clientFactoryOpt implementation of NewCallOption
//
// WithClientFactory is used to replace how clients are built for each invocation, for instance to hand out a
// mock client in tests.
func WithClientFactory(f ClientFactory) options.NewCallOption[Call] {
	return &clientFactoryOpt{
		factory: f,
	}
}

type clientFactoryOpt struct {
	factory ClientFactory
}

func (o *clientFactoryOpt) Apply(c *Call) {
	if o.factory != nil {
		c.clientFactory = o.factory
	}
}

func (o *clientFactoryOpt) NewCallOptionName() string {
	return optionNameClientFactory
}

// WithClientCache returns clientCacheOpt implementation of NewCallOption
//
// WithClientCache wraps the client factory set so far in a ClientCache, so invocations resolving to the same
// Options share a client. Pass it after WithClientFactory when both are used.
func WithClientCache() options.NewCallOption[Call] {
	return &clientCacheOpt{}
}

type clientCacheOpt struct{}

func (o *clientCacheOpt) Apply(c *Call) {
	c.clientFactory = NewClientCache(c.clientFactory).Get
}

func (o *clientCacheOpt) NewCallOptionName() string {
	return optionNameClientCache
}

// WithExpander returns expanderOpt implementation of NewCallOption
//
// WithExpander replaces the placeholder expander used to resolve the configuration templates.
func WithExpander(e utils.Expander) options.NewCallOption[Call] {
	return &expanderOpt{
		expander: e,
	}
}

type expanderOpt struct {
	expander utils.Expander
}

func (o *expanderOpt) Apply(c *Call) {
	if o.expander != nil {
		c.expander = o.expander
	}
}

func (o *expanderOpt) NewCallOptionName() string {
	return optionNameExpander
}

// WithLogger returns loggerOpt implementation of NewCallOption
func WithLogger(l zerolog.Logger) options.NewCallOption[Call] {
	return &loggerOpt{
		logger: l,
	}
}

type loggerOpt struct {
	logger zerolog.Logger
}

func (o *loggerOpt) Apply(c *Call) {
	c.logger = o.logger.With().Str("operation", OperationType).Logger()
}

func (o *loggerOpt) NewCallOptionName() string {
	return optionNameLogger
}

// WithClock returns clockOpt implementation of NewCallOption
//
// WithClock replaces the clock link expirations are computed from.
func WithClock(now func() time.Time) options.NewCallOption[Call] {
	return &clockOpt{
		now: now,
	}
}

type clockOpt struct {
	now func() time.Time
}

func (o *clockOpt) Apply(c *Call) {
	if o.now != nil {
		c.now = o.now
	}
}

func (o *clockOpt) NewCallOptionName() string {
	return optionNameClock
}
