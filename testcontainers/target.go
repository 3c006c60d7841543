//go:build integration

package testcontainers

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/greenvulcano/gvesb-s3"
	"github.com/greenvulcano/gvesb-s3/call/s3"
)

// Target is a running server the conformance tests perform against.
type Target struct {
	Name      string
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
}

// Attributes returns the call configuration for action against t. The bucket is taken from the BUCKET message
// property so the same definition serves every test.
func (t Target) Attributes(action string) gvesb.Attributes {
	return gvesb.Attributes{
		s3.AttrAccessKey:      t.AccessKey,
		s3.AttrSecretKey:      t.SecretKey,
		s3.AttrRegion:         t.Region,
		s3.AttrAction:         action,
		s3.AttrBucket:         "@{{BUCKET}}",
		s3.AttrEndpoint:       t.Endpoint,
		s3.AttrForcePathStyle: "true",
	}
}

// createBucket creates t.Bucket with a client built the way the call builds its own.
func createBucket(t *testing.T, target Target) {
	ctx := context.Background()
	is := require.New(t)

	client, _, err := s3.NewClient(ctx, s3.Options{
		AccessKeyID:     target.AccessKey,
		SecretAccessKey: target.SecretKey,
		Region:          target.Region,
		Endpoint:        target.Endpoint,
		ForcePathStyle:  true,
	})
	is.NoError(err)

	_, err = client.(*awss3.Client).CreateBucket(ctx, &awss3.CreateBucketInput{Bucket: aws.String(target.Bucket)})
	is.NoError(err)
}
