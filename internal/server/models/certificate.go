// Package models defines the registry's server-side data models.
package models

// Certificate is an immutable listing of a renewable-energy certificate.
type Certificate struct {
	// ID is assigned by the registry: unique, starting at 0, strictly
	// increasing in creation order.
	ID uint64
	// EnergySource is the non-empty label, e.g. "solar".
	EnergySource string
	// Details is a free-text description.
	Details string
	// Price is in the smallest currency unit, never negative.
	Price int64
	// ImageURL points at an externally hosted image. It is never fetched.
	ImageURL string
	// Owner is the principal that listed the certificate while logged in,
	// nil for anonymous or logged-out submissions.
	Owner *string
	// CreatedAt is the registry's logical timestamp in Unix nanoseconds.
	CreatedAt int64
}

// CertificateDraft carries the caller-supplied fields of a new certificate.
// The store fills in ID and CreatedAt.
type CertificateDraft struct {
	EnergySource string
	Details      string
	Price        int64
	ImageURL     string
	Owner        *string
}
