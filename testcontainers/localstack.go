//go:build integration

package testcontainers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"
)

const (
	localStackPort   = "4566/tcp"
	localStackRegion = "us-east-1"
	localStackKey    = "dummy"
	localStackSecret = "dummy"
)

func startLocalStack(t *testing.T) Target {
	ctx := context.Background()
	is := require.New(t)

	ctr, err := localstack.Run(ctx, "localstack/localstack:latest", testcontainers.WithName("s3call-localstack"))
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	ep, err := ctr.PortEndpoint(ctx, localStackPort, "http")
	is.NoError(err)

	target := Target{
		Name:      "localstack",
		Endpoint:  ep,
		AccessKey: localStackKey,
		SecretKey: localStackSecret,
		Region:    localStackRegion,
		Bucket:    "localstack",
	}
	createBucket(t, target)
	return target
}
