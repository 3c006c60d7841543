package s3

import (
	"errors"

	"github.com/aws/smithy-go"

	"github.com/greenvulcano/gvesb-s3"
)

const (
	// ErrUnknownAction - the action attribute names no supported action
	ErrUnknownAction = gvesb.Error("unknown s3 action")

	// ErrInvalidExpiration - S3_LINK_EXPIRATION is not a positive integer count of milliseconds
	ErrInvalidExpiration = gvesb.Error("link expiration must be a positive number of milliseconds")

	// ErrNotInitialized - Perform was called before a successful Init
	ErrNotInitialized = gvesb.Error("s3-call is not initialized")
)

// IsNotFound reports whether err, or any error it wraps, is the storage service saying the bucket or object does
// not exist. It sees through *gvesb.CallError.
func IsNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return true
		}
	}
	return false
}
