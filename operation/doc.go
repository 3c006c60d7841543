/*
Package operation is the registry through which call operation types make themselves available to the host.

A plugin registers a Supplier under its type name when it starts and removes it when it stops:

	func (a *Activator) Start(ctx context.Context) error {
	    operation.RegisterSupplier(s3.OperationType, func() gvesb.CallOperation { return s3.New() })
	    return nil
	}

	func (a *Activator) Stop(ctx context.Context) error {
	    operation.UnregisterSupplier(s3.OperationType)
	    return nil
	}

The host then builds one instance per configured use:

	op, err := operation.NewConfigured("s3-call", "invoices-upload", node)

Every call to NewOperation or NewConfigured invokes the supplier, so instances are never shared between
configurations. The registry is safe for concurrent use.
*/
package operation
