package client

import (
	"context"

	"github.com/dmitrijs2005/recmarket/internal/client/models"
)

// Client is the registry API as seen by the CLI.
type Client interface {
	Login(ctx context.Context) (bool, error)
	Logout(ctx context.Context) (bool, error)
	AddCertificate(ctx context.Context, energySource, details string, price int64, imageURL string) (uint64, error)
	GetCertificates(ctx context.Context) ([]*models.Certificate, error)
	GetImageUploadURL(ctx context.Context, contentType string) (*models.ImageUpload, error)
	SetIdentityToken(token string)
	IdentityToken() string
	Close() error
}
