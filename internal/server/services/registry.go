// Package services contains server-side business logic. This file implements
// RegistryService, the append-only certificate catalog with per-caller
// session flags.
package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/recmarket/internal/common"
	"github.com/dmitrijs2005/recmarket/internal/logging"
	"github.com/dmitrijs2005/recmarket/internal/server/models"
	"github.com/dmitrijs2005/recmarket/internal/server/repositories/repomanager"
)

const (
	MaxEnergySourceLen = 128
	MaxDetailsLen      = 4096
	MaxImageURLLen     = 2048
)

// ValidationError describes a rejected addCertificate input. It matches
// common.ErrorValidation under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrorValidation
}

// RegistryService implements the registry operations. The caller principal is
// passed explicitly; "" and common.AnonymousPrincipal denote anonymous callers.
type RegistryService struct {
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewRegistryService(m repomanager.RepositoryManager, log logging.Logger) *RegistryService {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &RegistryService{repomanager: m, log: log}
}

// AddCertificate validates the input and appends a new certificate. The owner
// is set to caller only when caller is logged in. Validation failures are
// returned as *ValidationError; nothing is stored in that case.
//
// The session flag is read once, before the append is serialized with other
// writers. A logout that lands between that read and the append does not
// clear the owner of this certificate.
func (s *RegistryService) AddCertificate(ctx context.Context, caller, energySource, details string, price int64, imageURL string) (uint64, error) {
	if err := validateCertificate(energySource, details, price, imageURL); err != nil {
		s.log.Debug(ctx, "certificate rejected", "caller", caller, "error", err)
		return 0, err
	}

	owner, err := s.ownerFor(ctx, caller)
	if err != nil {
		s.log.Error(ctx, "session lookup failed", "caller", caller, "error", err)
		return 0, common.ErrorInternal
	}

	c, err := s.repomanager.Certificates().Append(ctx, &models.CertificateDraft{
		EnergySource: energySource,
		Details:      details,
		Price:        price,
		ImageURL:     imageURL,
		Owner:        owner,
	})
	if err != nil {
		s.log.Error(ctx, "certificate append failed", "caller", caller, "error", err)
		return 0, common.ErrorInternal
	}

	s.log.Info(ctx, "certificate added", "id", c.ID, "owned", owner != nil)
	return c.ID, nil
}

// GetCertificates returns every certificate in ascending id order.
func (s *RegistryService) GetCertificates(ctx context.Context) ([]*models.Certificate, error) {
	list, err := s.repomanager.Certificates().List(ctx)
	if err != nil {
		s.log.Error(ctx, "certificate list failed", "error", err)
		return nil, common.ErrorInternal
	}
	return list, nil
}

// Login marks caller as logged in. Anonymous callers are refused with false.
func (s *RegistryService) Login(ctx context.Context, caller string) (bool, error) {
	if common.IsAnonymous(caller) {
		s.log.Debug(ctx, "anonymous login refused")
		return false, nil
	}
	if err := s.repomanager.Sessions().SetState(ctx, caller, models.LoggedIn); err != nil {
		s.log.Error(ctx, "login failed", "caller", caller, "error", err)
		return false, common.ErrorInternal
	}
	s.log.Info(ctx, "logged in", "caller", caller)
	return true, nil
}

// Logout clears caller's login flag. It always reports true.
func (s *RegistryService) Logout(ctx context.Context, caller string) (bool, error) {
	if common.IsAnonymous(caller) {
		return true, nil
	}
	if err := s.repomanager.Sessions().SetState(ctx, caller, models.LoggedOut); err != nil {
		s.log.Error(ctx, "logout failed", "caller", caller, "error", err)
		return false, common.ErrorInternal
	}
	s.log.Info(ctx, "logged out", "caller", caller)
	return true, nil
}

// IsLoggedIn reports caller's session flag; anonymous callers never are.
func (s *RegistryService) IsLoggedIn(ctx context.Context, caller string) (bool, error) {
	if common.IsAnonymous(caller) {
		return false, nil
	}
	st, err := s.repomanager.Sessions().State(ctx, caller)
	if err != nil {
		return false, err
	}
	return st == models.LoggedIn, nil
}

func (s *RegistryService) ownerFor(ctx context.Context, caller string) (*string, error) {
	ok, err := s.IsLoggedIn(ctx, caller)
	if err != nil || !ok {
		return nil, err
	}
	owner := caller
	return &owner, nil
}

func validateCertificate(energySource, details string, price int64, imageURL string) error {
	switch {
	case strings.TrimSpace(energySource) == "":
		return &ValidationError{Field: "energySource", Reason: "must not be empty"}
	case utf8.RuneCountInString(energySource) > MaxEnergySourceLen:
		return &ValidationError{Field: "energySource", Reason: fmt.Sprintf("longer than %d characters", MaxEnergySourceLen)}
	case utf8.RuneCountInString(details) > MaxDetailsLen:
		return &ValidationError{Field: "details", Reason: fmt.Sprintf("longer than %d characters", MaxDetailsLen)}
	case price < 0:
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	case utf8.RuneCountInString(imageURL) > MaxImageURLLen:
		return &ValidationError{Field: "imageUrl", Reason: fmt.Sprintf("longer than %d characters", MaxImageURLLen)}
	}

	if imageURL == "" {
		return nil
	}
	u, err := url.Parse(imageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ValidationError{Field: "imageUrl", Reason: "must be an absolute http(s) URL"}
	}
	return nil
}
