package s3

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/greenvulcano/gvesb-s3"
	"github.com/greenvulcano/gvesb-s3/options"
	"github.com/greenvulcano/gvesb-s3/utils"
)

// OperationType is the name the call registers under with the operation registry.
const OperationType = "s3-call"

var _ gvesb.CallOperation = (*Call)(nil)

// Call implements gvesb.CallOperation for S3-compatible object storage.
//
// A Call holds no mutable state after Init, so Perform may run concurrently. By default every Perform builds its
// own client from the resolved credentials and region; use WithClientCache to share clients instead.
type Call struct {
	key    gvesb.OperationKey
	config Config
	kind   Action
	act    action

	clientFactory ClientFactory
	expander      utils.Expander
	logger        zerolog.Logger
	now           func() time.Time
}

// New returns an uninitialized Call configured by opts.
func New(opts ...options.NewCallOption[Call]) *Call {
	c := &Call{
		clientFactory: NewClient,
		expander:      utils.NewPlaceholderExpander(),
		logger:        log.Logger.With().Str("operation", OperationType).Logger(),
		now:           time.Now,
	}
	options.ApplyOptions(c, opts...)
	return c
}

// Init reads the call configuration from node. It fails with a *gvesb.InitializationError when a required attribute
// is missing, an optional one cannot be parsed or the action is unknown.
func (c *Call) Init(node gvesb.Node) error {
	c.logger.Debug().Msg("Initializing s3-call...")

	cfg, err := readConfig(node)
	if err != nil {
		return gvesb.NewInitializationError(err)
	}
	kind, err := ParseAction(cfg.Action)
	if err != nil {
		return gvesb.NewInitializationError(err)
	}
	act, err := newAction(kind, cfg)
	if err != nil {
		return gvesb.NewInitializationError(err)
	}

	c.config, c.kind, c.act = cfg, kind, act
	c.logger.Debug().Stringer("action", kind).Msg("Configured S3 operation")
	return nil
}

// Perform runs the configured action against msg and returns msg with its payload replaced by the result. Any
// failure is returned as a *gvesb.CallError.
func (c *Call) Perform(ctx context.Context, msg *gvesb.Message) (*gvesb.Message, error) {
	logger := c.logger.With().Str("tid", msg.ID.String()).Stringer("action", c.kind).Logger()
	logger.Debug().Msg("Starting S3 call")

	if err := c.perform(ctx, msg, logger); err != nil {
		event := logger.Error()
		if IsNotFound(err) {
			event = logger.Warn()
		}
		event.Err(err).Str("service", msg.Service).Msg("S3 call failed")
		return nil, gvesb.NewCallError(msg, err)
	}

	logger.Debug().Msg("End S3 call")
	return msg, nil
}

func (c *Call) perform(ctx context.Context, msg *gvesb.Message, logger zerolog.Logger) error {
	if c.act == nil {
		return ErrNotInitialized
	}

	opts, bucket, err := c.resolve(msg)
	if err != nil {
		return err
	}
	client, presigner, err := c.clientFactory(ctx, opts)
	if err != nil {
		return utils.WrapClientError(err)
	}

	return c.act.run(ctx, &request{
		client:    client,
		presigner: presigner,
		bucket:    bucket,
		msg:       msg,
		now:       c.now(),
		logger:    logger,
	})
}

// resolve expands the configuration templates against msg.
func (c *Call) resolve(msg *gvesb.Message) (Options, string, error) {
	opts := Options{
		RoleARN:        c.config.RoleARN,
		ForcePathStyle: c.config.ForcePathStyle,
	}
	var bucket string

	for _, t := range []struct {
		attr, tmpl string
		dst        *string
	}{
		{AttrAccessKey, c.config.AccessKey, &opts.AccessKeyID},
		{AttrSecretKey, c.config.SecretKey, &opts.SecretAccessKey},
		{AttrSessionToken, c.config.SessionToken, &opts.SessionToken},
		{AttrRegion, c.config.Region, &opts.Region},
		{AttrEndpoint, c.config.Endpoint, &opts.Endpoint},
		{AttrBucket, c.config.Bucket, &bucket},
	} {
		v, err := c.expander.Expand(t.tmpl, msg)
		if err != nil {
			return Options{}, "", utils.WrapExpandError(t.attr, err)
		}
		*t.dst = v
	}
	return opts, bucket, nil
}

// Action returns the configured action, or zero before Init.
func (c *Call) Action() Action {
	return c.kind
}

// Config returns the configuration read by Init.
func (c *Call) Config() Config {
	return c.config
}

// CleanUp does nothing; no resources are held between invocations.
func (c *Call) CleanUp() {}

// Destroy does nothing; no resources are held between invocations.
func (c *Call) Destroy() {}

// SetKey stores the host assigned key.
func (c *Call) SetKey(key gvesb.OperationKey) {
	c.key = key
}

// Key returns the host assigned key.
func (c *Call) Key() gvesb.OperationKey {
	return c.key
}

// ServiceAlias returns the message's service name.
func (c *Call) ServiceAlias(msg *gvesb.Message) string {
	return msg.Service
}
