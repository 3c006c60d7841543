//go:build integration

package testcontainers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenvulcano/gvesb-s3"
	"github.com/greenvulcano/gvesb-s3/call/s3"
	"github.com/greenvulcano/gvesb-s3/operation"
)

// RunConformanceTests performs every action against target through the operation registry. The s3-call type
// must already be registered.
func RunConformanceTests(t *testing.T, target Target) {
	t.Helper()
	p := performer{target: target}

	t.Run("PutGet", func(t *testing.T) { testPutGet(t, p) })
	t.Run("List", func(t *testing.T) { testList(t, p) })
	t.Run("DeleteThenGet", func(t *testing.T) { testDeleteThenGet(t, p) })
	t.Run("Copy", func(t *testing.T) { testCopy(t, p) })
	t.Run("Link", func(t *testing.T) { testLink(t, p) })
}

type performer struct {
	target Target
}

func (p performer) perform(t *testing.T, action string, payload any, props map[string]string) (*gvesb.Message, error) {
	t.Helper()
	op, err := operation.NewConfigured(s3.OperationType, gvesb.OperationKey(p.target.Name+"-"+action), p.target.Attributes(action))
	require.NoError(t, err)
	defer op.Destroy()

	msg := gvesb.NewMessage("CONFORMANCE", p.target.Name)
	msg.SetProperty("BUCKET", p.target.Bucket)
	for k, v := range props {
		msg.SetProperty(k, v)
	}
	msg.Payload = payload
	return op.Perform(context.Background(), msg)
}

func (p performer) put(t *testing.T, key, content string) {
	t.Helper()
	_, err := p.perform(t, "put", []byte(content), map[string]string{s3.PropFileName: key})
	require.NoError(t, err)
}

func (p performer) get(t *testing.T, key string) ([]byte, error) {
	t.Helper()
	msg, err := p.perform(t, "get", nil, map[string]string{s3.PropFileName: key})
	if err != nil {
		return nil, err
	}
	b, ok := msg.Payload.([]byte)
	require.True(t, ok, "get leaves the object bytes in the payload")
	return b, nil
}

func (p performer) list(t *testing.T, props map[string]string) s3.Listing {
	t.Helper()
	msg, err := p.perform(t, "list", nil, props)
	require.NoError(t, err)

	var listing s3.Listing
	require.NoError(t, json.Unmarshal([]byte(msg.Payload.(string)), &listing))
	return listing
}

func testPutGet(t *testing.T, p performer) {
	msg, err := p.perform(t, "put", []byte("hello world"), map[string]string{s3.PropFileName: "putget/hello.txt"})
	require.NoError(t, err)
	if msg.Payload != nil {
		assert.IsType(t, "", msg.Payload, "versioned buckets leave the version id")
	}

	got, err := p.get(t, "putget/hello.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), got)

	p.put(t, "putget/empty.txt", "")
	got, err = p.get(t, "putget/empty.txt")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testList(t *testing.T, p performer) {
	for _, key := range []string{"list/a.txt", "list/b.txt", "list/sub/c.txt"} {
		p.put(t, key, key)
	}

	listing := p.list(t, map[string]string{s3.PropPrefix: "list/", s3.PropDelimiter: "NULL"})
	assert.Equal(t, p.target.Bucket, listing.Name)
	assert.Equal(t, "list/", listing.Prefix)
	assert.Equal(t, "/", listing.Delimiter)
	require.Len(t, listing.Files, 2)
	assert.Equal(t, "list/a.txt", listing.Files[0].Key)
	assert.Equal(t, int64(len("list/a.txt")), listing.Files[0].Size)
	assert.Equal(t, p.target.Bucket, listing.Files[0].BucketName)
	assert.NotNil(t, listing.Files[0].LastModified)
	assert.Equal(t, "list/b.txt", listing.Files[1].Key)
	assert.Equal(t, []string{"list/sub/"}, listing.Directories)

	flat := p.list(t, map[string]string{s3.PropPrefix: "list/", s3.PropDelimiter: ""})
	assert.Len(t, flat.Files, 3, "no delimiter lists every object under the prefix")
	assert.Empty(t, flat.Directories)

	empty := p.list(t, map[string]string{s3.PropPrefix: "nothing-here/"})
	assert.Empty(t, empty.Files)
	assert.Empty(t, empty.Directories)
}

func testDeleteThenGet(t *testing.T, p performer) {
	p.put(t, "delete/a.txt", "doomed")

	msg, err := p.perform(t, "delete", nil, map[string]string{s3.PropFileName: "delete/a.txt"})
	require.NoError(t, err)
	assert.Equal(t, s3.StatusDeleted, msg.Payload)

	_, err = p.get(t, "delete/a.txt")
	require.Error(t, err, "a deleted object cannot be read")
	var callErr *gvesb.CallError
	require.ErrorAs(t, err, &callErr)
	assert.True(t, s3.IsNotFound(err))
}

func testCopy(t *testing.T, p performer) {
	p.put(t, "copy/source file+1.txt", "copied content")

	msg, err := p.perform(t, "copy", nil, map[string]string{
		s3.PropFileName:    "copy/source file+1.txt",
		s3.PropFileNameNew: "copy/target.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, s3.StatusCopied, msg.Payload)

	src, err := p.get(t, "copy/source file+1.txt")
	require.NoError(t, err)
	dst, err := p.get(t, "copy/target.txt")
	require.NoError(t, err)
	assert.Equal(t, src, dst)
}

func testLink(t *testing.T, p performer) {
	p.put(t, "link/a.txt", "shared content")

	msg, err := p.perform(t, "link", nil, map[string]string{
		s3.PropFileName:       "link/a.txt",
		s3.PropLinkExpiration: "60000",
	})
	require.NoError(t, err)

	link, err := url.Parse(msg.Payload.(string))
	require.NoError(t, err)
	assert.Equal(t, "60", link.Query().Get("X-Amz-Expires"))

	resp, err := http.Get(link.String()) //nolint:gosec,noctx
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "shared content", string(body))
}
