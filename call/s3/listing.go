package s3

import (
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Listing is the JSON document the list action stores in the message payload.
type Listing struct {
	Name        string          `json:"name"`
	Prefix      string          `json:"prefix"`
	Delimiter   string          `json:"delimiter"`
	Files       []ObjectSummary `json:"files"`
	Directories []string        `json:"directories"`
}

// ObjectSummary describes one listed object.
type ObjectSummary struct {
	BucketName   string     `json:"bucketName"`
	Key          string     `json:"key"`
	ETag         string     `json:"eTag"`
	Size         int64      `json:"size"`
	LastModified *time.Time `json:"lastModified,omitempty"`
	StorageClass string     `json:"storageClass,omitempty"`
}

func newListing(bucket, prefix, delimiter string) *Listing {
	return &Listing{
		Name:        bucket,
		Prefix:      prefix,
		Delimiter:   delimiter,
		Files:       []ObjectSummary{},
		Directories: []string{},
	}
}

func (l *Listing) addPage(page *s3.ListObjectsV2Output) {
	for _, o := range page.Contents {
		l.Files = append(l.Files, ObjectSummary{
			BucketName:   l.Name,
			Key:          aws.ToString(o.Key),
			ETag:         aws.ToString(o.ETag),
			Size:         aws.ToInt64(o.Size),
			LastModified: o.LastModified,
			StorageClass: string(o.StorageClass),
		})
	}
	for _, p := range page.CommonPrefixes {
		l.Directories = append(l.Directories, aws.ToString(p.Prefix))
	}
}

// text returns the listing pretty-printed with a one space indent.
func (l *Listing) text() (string, error) {
	b, err := json.MarshalIndent(l, "", " ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
