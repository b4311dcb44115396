package attachment

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/skillscan/scanworker/internal/career"
)

// Producer supplies the user's document as raw bytes plus a declared
// media type. The core consumes only this tuple.
type Producer interface {
	Fetch(ctx context.Context, key, declaredMIME string) (career.Attachment, error)
}

// R2Config locates the Cloudflare R2 bucket documents are uploaded to.
type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

// R2Producer fetches documents from R2 over the S3 API.
type R2Producer struct {
	client *s3.Client
	bucket string
}

func NewR2Producer(awsCfg aws.Config, r2 R2Config) *R2Producer {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2.AccountID))
	})
	return &R2Producer{client: client, bucket: r2.Bucket}
}

// Fetch downloads the object and normalizes it into a service-ready
// attachment.
func (p *R2Producer) Fetch(ctx context.Context, key, declaredMIME string) (career.Attachment, error) {
	out, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return career.Attachment{}, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	data, err := readAll(out.Body)
	if err != nil {
		return career.Attachment{}, fmt.Errorf("failed to read object body: %w", err)
	}
	return Normalize(career.Attachment{Data: data, MIMEType: declaredMIME})
}
