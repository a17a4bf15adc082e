package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/recmarket/internal/common"
	"github.com/dmitrijs2005/recmarket/internal/logging"
	sc "github.com/dmitrijs2005/recmarket/internal/server/config"
	"github.com/dmitrijs2005/recmarket/internal/timex"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	loggedIn bool
	err      error
}

func (s stubSessions) IsLoggedIn(context.Context, string) (bool, error) { return s.loggedIn, s.err }

var fixedNow = time.Date(2024, time.March, 7, 23, 30, 0, 0, time.UTC)

func newImageSvc(t *testing.T, sessions sessionChecker) *ImageService {
	t.Helper()
	cfg := &sc.Config{
		S3Region:          "us-east-1",
		S3RootUser:        "minioadmin",
		S3RootPassword:    "minioadmin",
		S3BaseEndpoint:    "http://127.0.0.1:9000/",
		S3Bucket:          "certificates",
		ImageUploadExpiry: 10 * time.Minute,
	}
	return NewImageService(sessions, cfg, timex.ClockFunc(func() time.Time { return fixedNow }), logging.NopLogger{})
}

func stubAWS(t *testing.T) {
	t.Helper()
	origLoad, origNewS3, origNewPre, origPut, origID := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, presignPutObject, newObjectID
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		newObjectID = origID
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	newObjectID = func() uuid.UUID {
		return uuid.MustParse("11111111-2222-3333-4444-555555555555")
	}
}

func TestStorageKey_Format(t *testing.T) {
	svc := newImageSvc(t, stubSessions{})
	key := svc.StorageKey()
	assert.Regexp(t, regexp.MustCompile(`^certificates/2024/03/07/[0-9a-f-]{36}$`), key)
}

func TestObjectURL_PathStyle(t *testing.T) {
	svc := newImageSvc(t, stubSessions{})
	assert.Equal(t, "http://127.0.0.1:9000/certificates/a/b", svc.ObjectURL("a/b"))
}

func TestGetPresignClient_AppliesConfig(t *testing.T) {
	stubAWS(t)
	svc := newImageSvc(t, stubSessions{})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		return aws.Config{}, nil
	}
	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	pc, err := svc.getPresignClient(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, pc)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000/", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = svc.getPresignClient(context.Background())
	assert.EqualError(t, err, "load-fail")
}

func TestGetImageUploadURL_Success(t *testing.T) {
	stubAWS(t)
	svc := newImageSvc(t, stubSessions{loggedIn: true})

	var got *s3.PutObjectInput
	var expires time.Duration
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		got = in
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		expires = po.Expires
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/certificates/put?sig=1", Method: "PUT"}, nil
	}

	up, err := svc.GetImageUploadURL(context.Background(), "alice", "image/png")
	require.NoError(t, err)

	wantKey := "certificates/2024/03/07/11111111-2222-3333-4444-555555555555"
	assert.Equal(t, wantKey, up.Key)
	assert.Equal(t, "http://127.0.0.1:9000/certificates/"+wantKey, up.ImageURL)
	assert.Equal(t, "http://127.0.0.1:9000/certificates/put?sig=1", up.UploadURL)

	require.NotNil(t, got)
	assert.Equal(t, "certificates", aws.ToString(got.Bucket))
	assert.Equal(t, wantKey, aws.ToString(got.Key))
	assert.Equal(t, "image/png", aws.ToString(got.ContentType))
	assert.Equal(t, 10*time.Minute, expires)
}

func TestGetImageUploadURL_Errors(t *testing.T) {
	stubAWS(t)
	ctx := context.Background()

	_, err := newImageSvc(t, stubSessions{}).GetImageUploadURL(ctx, "bob", "")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = newImageSvc(t, stubSessions{err: errors.New("db")}).GetImageUploadURL(ctx, "bob", "")
	assert.ErrorIs(t, err, common.ErrorInternal)

	_, err = newImageSvc(t, stubSessions{loggedIn: true}).GetImageUploadURL(ctx, "bob", "text/plain")
	assert.ErrorIs(t, err, common.ErrorValidation)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = newImageSvc(t, stubSessions{loggedIn: true}).GetImageUploadURL(ctx, "bob", "")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestGetImageUploadURL_PresignError(t *testing.T) {
	stubAWS(t)
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	}

	_, err := newImageSvc(t, stubSessions{loggedIn: true}).GetImageUploadURL(context.Background(), "bob", "")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestImageService_WithRegistrySessions(t *testing.T) {
	stubAWS(t)
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "u"}, nil
	}

	reg := newRegistry(t)
	svc := newImageSvc(t, reg)
	ctx := context.Background()

	_, err := svc.GetImageUploadURL(ctx, "carol", "")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = reg.Login(ctx, "carol")
	require.NoError(t, err)
	_, err = svc.GetImageUploadURL(ctx, "carol", "")
	assert.NoError(t, err)

	_, err = svc.GetImageUploadURL(ctx, common.AnonymousPrincipal, "")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
