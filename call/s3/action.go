package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/greenvulcano/gvesb-s3"
	"github.com/greenvulcano/gvesb-s3/utils"
)

// Message properties read by the actions.
const (
	PropPrefix         = "S3_PREFIX"
	PropDelimiter      = "S3_DELIMITER"
	PropFileName       = "S3_FILE_NAME"
	PropFileNameNew    = "S3_FILE_NAME_NEW"
	PropLinkExpiration = "S3_LINK_EXPIRATION"
)

const (
	// DefaultDelimiter is the list delimiter used when S3_DELIMITER is not set.
	DefaultDelimiter = "/"

	// unsetValue is the property value hosts use to mean "not set".
	unsetValue = "NULL"

	// StatusDeleted is the payload left by a successful delete.
	StatusDeleted = "Object Deleted"
	// StatusCopied is the payload left by a successful copy.
	StatusCopied = "Object Copied"
)

// Action is the storage operation a Call performs. It is fixed when the call is initialized.
type Action int

// Supported actions.
const (
	ActionList Action = iota + 1
	ActionPut
	ActionGet
	ActionDelete
	ActionCopy
	ActionLink
)

var actionNames = map[Action]string{
	ActionList:   "list",
	ActionPut:    "put",
	ActionGet:    "get",
	ActionDelete: "delete",
	ActionCopy:   "copy",
	ActionLink:   "link",
}

// String returns the configuration name of a.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction returns the Action named s. Names are case sensitive.
func ParseAction(s string) (Action, error) {
	for a, n := range actionNames {
		if n == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// request is everything one action run needs.
type request struct {
	client    Client
	presigner Presigner
	bucket    string
	msg       *gvesb.Message
	now       time.Time
	logger    zerolog.Logger
}

// action is implemented by one type per Action.
type action interface {
	run(ctx context.Context, r *request) error
}

func newAction(a Action, cfg Config) (action, error) {
	switch a {
	case ActionList:
		return listAction{}, nil
	case ActionPut:
		return putAction{partSize: cfg.PartSize}, nil
	case ActionGet:
		return getAction{}, nil
	case ActionDelete:
		return deleteAction{}, nil
	case ActionCopy:
		return copyAction{}, nil
	case ActionLink:
		return linkAction{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAction, a)
}

type listAction struct{}

func (listAction) run(ctx context.Context, r *request) error {
	prefix := optionalProperty(r.msg, PropPrefix, "")
	delimiter := optionalProperty(r.msg, PropDelimiter, DefaultDelimiter)
	r.logger.Debug().Str("bucket", r.bucket).Str("prefix", prefix).Msg("Listing files")

	in := &s3.ListObjectsV2Input{Bucket: aws.String(r.bucket)}
	if prefix != "" {
		in.Prefix = aws.String(prefix)
	}
	if delimiter != "" {
		in.Delimiter = aws.String(delimiter)
	}

	listing := newListing(r.bucket, prefix, delimiter)
	pages := s3.NewListObjectsV2Paginator(r.client, in)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return utils.WrapListError(err)
		}
		listing.addPage(page)
	}

	text, err := listing.text()
	if err != nil {
		return utils.WrapListError(err)
	}
	r.msg.Payload = text
	r.logger.Debug().Str("bucket", r.bucket).
		Int("files", len(listing.Files)).
		Int("directories", len(listing.Directories)).
		Msg("List received")
	return nil
}

type putAction struct {
	partSize int64
}

func (a putAction) run(ctx context.Context, r *request) error {
	key, err := requiredProperty(r.msg, PropFileName)
	if err != nil {
		return utils.WrapPutError(err)
	}
	body, err := payloadBytes(r.msg.Payload)
	if err != nil {
		return utils.WrapPutError(err)
	}
	r.logger.Debug().Str("bucket", r.bucket).Str("key", key).Int("size", len(body)).Msg("Sending object")

	uploader := manager.NewUploader(r.client, func(u *manager.Uploader) {
		if a.partSize > 0 {
			u.PartSize = a.partSize
		}
	})
	out, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(mimetype.Detect(body).String()),
	})
	if err != nil {
		return utils.WrapPutError(err)
	}

	// unversioned buckets return no version id
	if out.VersionID == nil {
		r.msg.Payload = nil
	} else {
		r.msg.Payload = *out.VersionID
	}
	r.logger.Debug().Str("bucket", r.bucket).Str("key", key).Msg("Object sent")
	return nil
}

type getAction struct{}

func (getAction) run(ctx context.Context, r *request) (err error) {
	key, err := requiredProperty(r.msg, PropFileName)
	if err != nil {
		return utils.WrapGetError(err)
	}
	r.logger.Debug().Str("bucket", r.bucket).Str("key", key).Msg("Getting object")

	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return utils.WrapGetError(err)
	}
	defer func() {
		if cerr := out.Body.Close(); cerr != nil && err == nil {
			err = utils.WrapGetError(cerr)
		}
	}()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return utils.WrapGetError(err)
	}
	r.msg.Payload = data
	r.logger.Debug().Str("bucket", r.bucket).Str("key", key).Int("size", len(data)).Msg("Object received")
	return nil
}

type deleteAction struct{}

func (deleteAction) run(ctx context.Context, r *request) error {
	key, err := requiredProperty(r.msg, PropFileName)
	if err != nil {
		return utils.WrapDeleteError(err)
	}
	r.logger.Debug().Str("bucket", r.bucket).Str("key", key).Msg("Deleting object")

	_, err = r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return utils.WrapDeleteError(err)
	}
	r.msg.Payload = StatusDeleted
	return nil
}

type copyAction struct{}

func (copyAction) run(ctx context.Context, r *request) error {
	src, err := requiredProperty(r.msg, PropFileName)
	if err != nil {
		return utils.WrapCopyError(err)
	}
	dst, err := requiredProperty(r.msg, PropFileNameNew)
	if err != nil {
		return utils.WrapCopyError(err)
	}
	r.logger.Debug().Str("bucket", r.bucket).Str("key", src).Str("newKey", dst).Msg("Copying object")

	_, err = r.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(r.bucket),
		Key:        aws.String(dst),
		CopySource: aws.String(copySource(r.bucket, src)),
	})
	if err != nil {
		return utils.WrapCopyError(err)
	}
	r.msg.Payload = StatusCopied
	return nil
}

type linkAction struct{}

func (linkAction) run(ctx context.Context, r *request) error {
	key, err := requiredProperty(r.msg, PropFileName)
	if err != nil {
		return utils.WrapLinkError(err)
	}
	ttl, err := linkExpiration(r.msg)
	if err != nil {
		return utils.WrapLinkError(err)
	}
	expiresAt := r.now.Add(ttl)
	r.logger.Debug().Str("bucket", r.bucket).Str("key", key).Time("expiresAt", expiresAt).Msg("Signing download link")

	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiresAt.Sub(r.now)))
	if err != nil {
		return utils.WrapLinkError(err)
	}
	r.msg.Payload = req.URL
	return nil
}

// optionalProperty returns the named property, or def when it is absent or holds the "NULL" sentinel.
func optionalProperty(msg *gvesb.Message, name, def string) string {
	v, ok := msg.Property(name)
	if !ok || v == unsetValue {
		return def
	}
	return v
}

func requiredProperty(msg *gvesb.Message, name string) (string, error) {
	v, ok := msg.Property(name)
	if !ok || v == "" {
		return "", fmt.Errorf("%s: %w", name, gvesb.ErrMissingProperty)
	}
	return v, nil
}

func linkExpiration(msg *gvesb.Message) (time.Duration, error) {
	v, err := requiredProperty(msg, PropLinkExpiration)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || ms <= 0 || ms > math.MaxInt64/int64(time.Millisecond) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpiration, v)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func payloadBytes(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case []byte:
		return p, nil
	case string:
		return []byte(p), nil
	}
	return nil, fmt.Errorf("%w: %T", gvesb.ErrUnsupportedPayload, payload)
}

// copySource returns the URL-encoded bucket/key form CopyObject expects.
func copySource(bucket, key string) string {
	return bucket + "/" + url.PathEscape(key)
}
