// Package options provides the generic contract for functional options used when building call operations.
package options

// NewCallOption interface contains functions that should be implemented by any option used to configure a call
// operation of type T.
// Example:
// ```
//
//	type verboseOpt struct{}
//	func (o *verboseOpt) Apply(c *s3.Call) {
//		c.verbose = true
//	}
//	func (o *verboseOpt) NewCallOptionName() string {
//		return "verbose"
//	}
//
// ```
type NewCallOption[T any] interface {
	Apply(*T)
	NewCallOptionName() string
}

// ApplyOptions applies opts to c in order. Nil options are skipped.
func ApplyOptions[T any](c *T, opts ...NewCallOption[T]) {
	for _, o := range opts {
		if o != nil {
			o.Apply(c)
		}
	}
}
