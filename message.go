package gvesb

import (
	"sort"

	"github.com/google/uuid"
)

// Message is the unit of data routed through the ESB: a payload plus a set of string properties.
//
// A Message is owned by the invocation handling it and is not safe for concurrent use.
type Message struct {
	// ID is the transaction identifier used to correlate log lines and errors.
	ID uuid.UUID
	// Service is the declared service name.
	Service string
	// System is the declared system name.
	System string
	// Payload is the message body. Operations typically store []byte, string or nil here.
	Payload any

	properties map[string]string
}

// NewMessage returns a message for service and system with a fresh transaction id.
func NewMessage(service, system string) *Message {
	return &Message{
		ID:         uuid.New(),
		Service:    service,
		System:     system,
		properties: make(map[string]string),
	}
}

// Property returns the named property and whether it is set.
func (m *Message) Property(name string) (string, bool) {
	v, ok := m.properties[name]
	return v, ok
}

// SetProperty sets the named property, replacing any previous value.
func (m *Message) SetProperty(name, value string) {
	if m.properties == nil {
		m.properties = make(map[string]string)
	}
	m.properties[name] = value
}

// RemoveProperty deletes the named property. Removing an unset property is a no-op.
func (m *Message) RemoveProperty(name string) {
	delete(m.properties, name)
}

// PropertyNames returns the names of all set properties in lexical order.
func (m *Message) PropertyNames() []string {
	names := make([]string, 0, len(m.properties))
	for k := range m.properties {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
