package utils

import "fmt"

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s error: %w", op, err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return wrap("list", err)
}

// WrapPutError returns a wrapped put error
func WrapPutError(err error) error {
	return wrap("put", err)
}

// WrapGetError returns a wrapped get error
func WrapGetError(err error) error {
	return wrap("get", err)
}

// WrapDeleteError returns a wrapped delete error
func WrapDeleteError(err error) error {
	return wrap("delete", err)
}

// WrapCopyError returns a wrapped copy error
func WrapCopyError(err error) error {
	return wrap("copy", err)
}

// WrapLinkError returns a wrapped link error
func WrapLinkError(err error) error {
	return wrap("link", err)
}

// WrapClientError returns a wrapped client construction error
func WrapClientError(err error) error {
	return wrap("client", err)
}

// WrapExpandError returns an error naming the attribute whose template failed to expand
func WrapExpandError(attribute string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("expand %s error: %w", attribute, err)
}
