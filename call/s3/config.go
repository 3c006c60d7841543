package s3

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/greenvulcano/gvesb-s3"
)

// Configuration attribute names.
const (
	AttrAccessKey      = "akid"
	AttrSecretKey      = "skid"
	AttrSessionToken   = "session-token"
	AttrRegion         = "region"
	AttrAction         = "action"
	AttrBucket         = "bucket"
	AttrEndpoint       = "endpoint"
	AttrRoleARN        = "role-arn"
	AttrForcePathStyle = "path-style"
	AttrPartSize       = "part-size"
)

// Config is the configuration read by Init. The credential, region, bucket and endpoint fields are templates
// resolved against every message.
type Config struct {
	AccessKey      string `attr:"akid" validate:"required"`
	SecretKey      string `attr:"skid" validate:"required"`
	SessionToken   string `attr:"session-token"`
	Region         string `attr:"region" validate:"required"`
	Action         string `attr:"action" validate:"required"`
	Bucket         string `attr:"bucket" validate:"required"`
	Endpoint       string `attr:"endpoint"`
	RoleARN        string `attr:"role-arn"`
	ForcePathStyle bool   `attr:"path-style"`
	PartSize       int64  `attr:"part-size" validate:"omitempty,min=5242880"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("attr")
	})
	return v
}

// readConfig reads and validates the call configuration from node.
func readConfig(node gvesb.Node) (Config, error) {
	attr := func(name string) string {
		v, _ := node.Attribute(name)
		return v
	}

	cfg := Config{
		AccessKey:    attr(AttrAccessKey),
		SecretKey:    attr(AttrSecretKey),
		SessionToken: attr(AttrSessionToken),
		Region:       attr(AttrRegion),
		Action:       attr(AttrAction),
		Bucket:       attr(AttrBucket),
		Endpoint:     attr(AttrEndpoint),
		RoleARN:      attr(AttrRoleARN),
	}

	var err error
	if v := attr(AttrForcePathStyle); v != "" {
		if cfg.ForcePathStyle, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", AttrForcePathStyle, err)
		}
	}
	if v := attr(AttrPartSize); v != "" {
		if cfg.PartSize, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", AttrPartSize, err)
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, translateValidation(err)
	}
	return cfg, nil
}

func translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Errorf("%s: %w", fe.Field(), gvesb.ErrMissingAttribute))
		default:
			errs = append(errs, fmt.Errorf("%s: value %v fails %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
		}
	}
	return errors.Join(errs...)
}
