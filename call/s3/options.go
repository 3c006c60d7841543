package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Options holds the resolved client settings for one invocation. Options is comparable so it can key ClientCache.
type Options struct {
	AccessKeyID     string `json:"accessKeyId,omitempty"`
	SecretAccessKey string `json:"secretAccessKey,omitempty"`
	SessionToken    string `json:"sessionToken,omitempty"`
	Region          string `json:"region,omitempty"`
	RoleARN         string `json:"roleARN,omitempty"`
	Endpoint        string `json:"endpoint,omitempty"`
	ForcePathStyle  bool   `json:"forcePathStyle,omitempty"`
}

// NewClient is the default ClientFactory. It builds a new S3 client from the default AWS configuration overridden
// by opts, along with a presigner bound to that client.
func NewClient(ctx context.Context, opt Options) (Client, Presigner, error) {
	// setup default config
	awsConfig, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	var static aws.CredentialsProvider
	if opt.AccessKeyID != "" && opt.SecretAccessKey != "" {
		static = credentials.NewStaticCredentialsProvider(opt.AccessKeyID, opt.SecretAccessKey, opt.SessionToken)
	}

	client := s3.NewFromConfig(awsConfig, func(opts *s3.Options) {
		if opt.Region != "" {
			opts.Region = opt.Region
		}

		// path style addressing for minio and other S3-compatible stores
		opts.UsePathStyle = opt.ForcePathStyle

		// use specific endpoint, otherwise, will use aws "default endpoint resolver" based on region
		if opt.Endpoint != "" {
			opts.BaseEndpoint = aws.String(opt.Endpoint)
		}

		switch {
		case opt.RoleARN != "":
			opts.Credentials = assumeRoleProvider(awsConfig, static, opt)
		case static != nil:
			opts.Credentials = static
		}
	})

	return client, s3.NewPresignClient(client), nil
}

// assumeRoleProvider assumes opt.RoleARN, authenticating to STS with the static credentials when given and with the
// default chain otherwise.
func assumeRoleProvider(awsConfig aws.Config, static aws.CredentialsProvider, opt Options) aws.CredentialsProvider {
	stsConfig := awsConfig.Copy()
	if static != nil {
		stsConfig.Credentials = static
	}
	if opt.Region != "" {
		stsConfig.Region = opt.Region
	}
	return aws.NewCredentialsCache(stscreds.NewAssumeRoleProvider(sts.NewFromConfig(stsConfig), opt.RoleARN))
}
