package operation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/greenvulcano/gvesb-s3"
)

// ErrUnknownOperationType is returned when no supplier is registered under the requested type name.
const ErrUnknownOperationType = gvesb.Error("no supplier registered for operation type")

// Supplier builds a new, uninitialized operation instance.
type Supplier func() gvesb.CallOperation

var mmu sync.RWMutex
var m map[string]Supplier

// RegisterSupplier registers a supplier under name, replacing any previous one
func RegisterSupplier(name string, s Supplier) {
	mmu.Lock()
	m[name] = s
	mmu.Unlock()
}

// UnregisterSupplier removes the supplier registered under name
func UnregisterSupplier(name string) {
	mmu.Lock()
	delete(m, name)
	mmu.Unlock()
}

// UnregisterAll removes every registered supplier
func UnregisterAll() {
	// mainly for tests
	mmu.Lock()
	m = make(map[string]Supplier)
	mmu.Unlock()
}

// Lookup returns the supplier registered under name, or nil
func Lookup(name string) Supplier {
	mmu.RLock()
	defer mmu.RUnlock()
	return m[name]
}

// RegisteredSuppliers returns the registered type names in lexical order
func RegisteredSuppliers() []string {
	var f []string
	mmu.RLock()
	for k := range m {
		f = append(f, k)
	}
	mmu.RUnlock()
	sort.Strings(f)
	return f
}

// NewOperation returns a fresh, uninitialized instance of the named operation type.
func NewOperation(name string) (gvesb.CallOperation, error) {
	s := Lookup(name)
	if s == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperationType, name)
	}
	return s(), nil
}

// NewConfigured returns an instance of the named operation type with its key set and Init already called with node.
func NewConfigured(name string, key gvesb.OperationKey, node gvesb.Node) (gvesb.CallOperation, error) {
	op, err := NewOperation(name)
	if err != nil {
		return nil, err
	}
	op.SetKey(key)
	if err := op.Init(node); err != nil {
		return nil, err
	}
	return op, nil
}

func init() {
	m = make(map[string]Supplier)
}
