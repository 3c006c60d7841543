//go:build integration

package testcontainers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/minio"
)

const minioRegion = "us-east-1"

func startMinio(t *testing.T) Target {
	ctx := context.Background()
	is := require.New(t)

	ctr, err := minio.Run(ctx, "minio/minio:latest", testcontainers.WithName("s3call-minio"))
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	ep, err := ctr.ConnectionString(ctx)
	is.NoError(err)

	target := Target{
		Name:      "minio",
		Endpoint:  "http://" + ep,
		AccessKey: ctr.Username,
		SecretKey: ctr.Password,
		Region:    minioRegion,
		Bucket:    "miniobucket",
	}
	createBucket(t, target)
	return target
}
