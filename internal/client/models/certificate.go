// Package models defines the client-side view of registry records.
package models

import (
	"strconv"
	"time"
)

// Certificate is a listed certificate as returned by the registry.
type Certificate struct {
	ID           uint64
	EnergySource string
	Details      string
	Price        int64
	ImageURL     string
	Owner        *string
	CreatedAt    int64
}

// OwnerText renders the optional owner, "-" when absent.
func (c *Certificate) OwnerText() string {
	if c.Owner == nil {
		return "-"
	}
	return *c.Owner
}

// PriceText renders the price as an integer.
func (c *Certificate) PriceText() string {
	return strconv.FormatInt(c.Price, 10)
}

// CreatedAtText renders the nanosecond timestamp in UTC RFC 3339.
func (c *Certificate) CreatedAtText() string {
	return time.Unix(0, c.CreatedAt).UTC().Format(time.RFC3339Nano)
}

// ImageUpload is a presigned upload slot for a certificate image.
type ImageUpload struct {
	UploadURL string
	ImageURL  string
	Key       string
}
