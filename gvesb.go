package gvesb

import "context"

// OperationKey is the opaque identifier the host assigns to a configured operation instance.
type OperationKey string

// Node represents a configuration element with its attributes already read from the host's configuration source.
type Node interface {
	// Attribute returns the raw value of the named attribute and whether it was present.
	Attribute(name string) (string, bool)
}

// Attributes is a map backed Node.
type Attributes map[string]string

// Attribute returns the value for name and whether it was set.
func (a Attributes) Attribute(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// CallOperation represents a configured unit of work the host invokes for every message routed to it.
//
// The host creates one instance per configured use, calls SetKey and Init once, then calls Perform any number of
// times, possibly concurrently. Implementations must not mutate their own state in Perform.
type CallOperation interface {
	// Init reads the operation's configuration. Any error returned should be an *InitializationError.
	Init(node Node) error

	// Perform executes the operation against msg, mutating and returning it. Any error returned should be
	// a *CallError.
	Perform(ctx context.Context, msg *Message) (*Message, error)

	// CleanUp releases per-invocation resources.
	CleanUp()

	// Destroy releases everything held by the instance. The instance must not be used afterwards.
	Destroy()

	// SetKey stores the host assigned key.
	SetKey(key OperationKey)

	// Key returns the host assigned key.
	Key() OperationKey

	// ServiceAlias returns the name the host uses to route and account for msg.
	ServiceAlias(msg *Message) string
}
