package database

import "fmt"

// OpError wraps a failed database operation with what was being done and to
// which resource.
type OpError struct {
	Op       string
	Resource string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapSettingErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "setting", Err: err}
}

func wrapCatalogErr(op, resource string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, Err: err}
}
