package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/recmarket/internal/common"
	"github.com/dmitrijs2005/recmarket/internal/logging"
	sc "github.com/dmitrijs2005/recmarket/internal/server/config"
	"github.com/dmitrijs2005/recmarket/internal/timex"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	newObjectID = uuid.New
)

// ImageUpload is a presigned upload slot for a certificate image.
type ImageUpload struct {
	// UploadURL accepts a single HTTP PUT until it expires.
	UploadURL string
	// ImageURL is the public object URL to submit as the certificate imageUrl.
	ImageURL string
	Key      string
}

// sessionChecker reports whether a caller is logged in.
type sessionChecker interface {
	IsLoggedIn(ctx context.Context, caller string) (bool, error)
}

// ImageService hands out presigned S3 PUT URLs to logged-in callers.
type ImageService struct {
	sessions sessionChecker
	config   *sc.Config
	clock    timex.Clock
	log      logging.Logger
}

func NewImageService(sessions sessionChecker, cfg *sc.Config, clock timex.Clock, log logging.Logger) *ImageService {
	if clock == nil {
		clock = timex.SystemClock{}
	}
	if log == nil {
		log = logging.NopLogger{}
	}
	return &ImageService{sessions: sessions, config: cfg, clock: clock, log: log}
}

// StorageKey returns a fresh object key under certificates/YYYY/MM/DD/.
func (s *ImageService) StorageKey() string {
	d := s.clock.Now().UTC()
	return fmt.Sprintf("certificates/%04d/%02d/%02d/%v", d.Year(), int(d.Month()), d.Day(), newObjectID())
}

// ObjectURL is the path-style public URL of key in the configured bucket.
func (s *ImageService) ObjectURL(key string) string {
	return strings.TrimRight(s.config.S3BaseEndpoint, "/") + "/" + s.config.S3Bucket + "/" + key
}

func (s *ImageService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// GetImageUploadURL presigns a PUT for a new image object. Anonymous and
// logged-out callers get common.ErrorUnauthorized. A non-empty contentType
// must be an image/* media type and is bound into the signature.
func (s *ImageService) GetImageUploadURL(ctx context.Context, caller, contentType string) (*ImageUpload, error) {
	ok, err := s.sessions.IsLoggedIn(ctx, caller)
	if err != nil {
		s.log.Error(ctx, "session lookup failed", "caller", caller, "error", err)
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return nil, &ValidationError{Field: "contentType", Reason: "must be an image/* media type"}
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		s.log.Error(ctx, "s3 config failed", "error", err)
		return nil, common.ErrorInternal
	}

	bucket := s.config.S3Bucket
	key := s.StorageKey()
	in := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(presignClient, ctx, in, s3.WithPresignExpires(s.config.ImageUploadExpiry))
	if err != nil {
		s.log.Error(ctx, "presign failed", "key", key, "error", err)
		return nil, common.ErrorInternal
	}

	s.log.Info(ctx, "image upload presigned", "caller", caller, "key", key)
	return &ImageUpload{UploadURL: req.URL, ImageURL: s.ObjectURL(key), Key: key}, nil
}
