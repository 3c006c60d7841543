package s3

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/greenvulcano/gvesb-s3"
)

type optionsTestSuite struct {
	suite.Suite
}

func (o *optionsTestSuite) SetupTest() {
	none := filepath.Join(o.T().TempDir(), "none")
	for k, v := range map[string]string{
		"AWS_CONFIG_FILE":             none,
		"AWS_SHARED_CREDENTIALS_FILE": none,
		"AWS_EC2_METADATA_DISABLED":   "true",
		"AWS_PROFILE":                 "",
		"AWS_REGION":                  "",
		"AWS_DEFAULT_REGION":          "",
		"AWS_ACCESS_KEY_ID":           "",
		"AWS_SECRET_ACCESS_KEY":       "",
		"AWS_SESSION_TOKEN":           "",
		"AWS_ENDPOINT_URL":            "",
		"AWS_ENDPOINT_URL_S3":         "",
	} {
		o.T().Setenv(k, v)
	}
}

func (o *optionsTestSuite) s3Options(opts Options) s3.Options {
	client, presigner, err := NewClient(context.Background(), opts)
	o.Require().NoError(err)
	o.NotNil(presigner, "presigner is set")
	o.Require().IsType(&s3.Client{}, client)
	return client.(*s3.Client).Options()
}

func (o *optionsTestSuite) TestNewClient() {
	// no options
	cfg := o.s3Options(Options{})
	o.Equal("", cfg.Region, "region is empty")
	o.False(cfg.UsePathStyle)
	o.Nil(cfg.BaseEndpoint)

	// options set
	cfg = o.s3Options(Options{
		AccessKeyID:     "mykey",
		SecretAccessKey: "mysecret",
		SessionToken:    "mytoken",
		Region:          "some-region",
		Endpoint:        "http://localhost:9000",
		ForcePathStyle:  true,
	})
	o.Equal("some-region", cfg.Region, "region is set")
	o.True(cfg.UsePathStyle, "path style is set")
	o.Equal("http://localhost:9000", aws.ToString(cfg.BaseEndpoint), "endpoint is set")

	creds, err := cfg.Credentials.Retrieve(context.Background())
	o.Require().NoError(err)
	o.Equal("mykey", creds.AccessKeyID)
	o.Equal("mysecret", creds.SecretAccessKey)
	o.Equal("mytoken", creds.SessionToken)

	// env var
	o.T().Setenv("AWS_REGION", "set-by-envvar")
	cfg = o.s3Options(Options{})
	o.Equal("set-by-envvar", cfg.Region, "region is set by env var")
}

func (o *optionsTestSuite) TestNewClientPartialCredentials() {
	o.T().Setenv("AWS_ACCESS_KEY_ID", "envkey")
	o.T().Setenv("AWS_SECRET_ACCESS_KEY", "envsecret")

	cfg := o.s3Options(Options{AccessKeyID: "mykey", Region: "eu-west-1"})
	creds, err := cfg.Credentials.Retrieve(context.Background())
	o.Require().NoError(err)
	o.Equal("envkey", creds.AccessKeyID, "both keys are needed to override the default chain")
}

func (o *optionsTestSuite) TestNewClientRoleARN() {
	cfg := o.s3Options(Options{
		AccessKeyID:     "mykey",
		SecretAccessKey: "mysecret",
		Region:          "eu-west-1",
		RoleARN:         "arn:aws:iam::123456789012:role/MyRole",
	})
	o.IsType(&aws.CredentialsCache{}, cfg.Credentials, "assumed role credentials are cached")
}

func (o *optionsTestSuite) TestPresignedLink() {
	call := New(WithLogger(zerolog.Nop()))
	o.Require().NoError(call.Init(gvesb.Attributes{
		AttrAccessKey:      "AKIDEXAMPLE",
		AttrSecretKey:      "SECRETEXAMPLE",
		AttrRegion:         "us-east-1",
		AttrAction:         "link",
		AttrBucket:         "b1",
		AttrEndpoint:       "http://localhost:9000",
		AttrForcePathStyle: "true",
	}))

	msg := gvesb.NewMessage("SVC", "SYS")
	msg.SetProperty(PropFileName, "reports/a.txt")
	msg.SetProperty(PropLinkExpiration, "90000")

	msg, err := call.Perform(context.Background(), msg)
	o.Require().NoError(err)

	link, err := url.Parse(msg.Payload.(string))
	o.Require().NoError(err)
	o.Equal("localhost:9000", link.Host)
	o.Equal("/b1/reports/a.txt", link.Path)

	q := link.Query()
	o.Equal("90", q.Get("X-Amz-Expires"), "valid for the requested offset")
	o.Equal("AWS4-HMAC-SHA256", q.Get("X-Amz-Algorithm"))
	o.True(strings.HasPrefix(q.Get("X-Amz-Credential"), "AKIDEXAMPLE/"), "signed with the resolved credentials")
	o.NotEmpty(q.Get("X-Amz-Signature"))
}

func TestOptions(t *testing.T) {
	suite.Run(t, new(optionsTestSuite))
}
