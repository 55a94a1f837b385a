package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/minimalapi/vehicles-api/internal/api/metrics"
	"github.com/minimalapi/vehicles-api/internal/core/domain"
	"github.com/minimalapi/vehicles-api/internal/core/ports"
)

// AdministratorService implements login and administrator CRUD.
type AdministratorService struct {
	repo     ports.AdministratorRepository
	comparer ports.SecretComparer
	tokens   ports.TokenIssuer
	audit    ports.LoginAuditSink // optional; nil disables login auditing
	logger   zerolog.Logger
}

func NewAdministratorService(
	repo ports.AdministratorRepository,
	comparer ports.SecretComparer,
	tokens ports.TokenIssuer,
	audit ports.LoginAuditSink,
	logger zerolog.Logger,
) *AdministratorService {
	return &AdministratorService{
		repo:     repo,
		comparer: comparer,
		tokens:   tokens,
		audit:    audit,
		logger:   logger,
	}
}

// Login verifies the email/password pair and issues a signed token. The
// lookup is single-shot and case-sensitive: any miss surfaces as
// domain.ErrInvalidCredentials, never distinguishing unknown email from
// wrong password.
func (s *AdministratorService) Login(ctx context.Context, email, password string) (string, *domain.Administrator, error) {
	administrator, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdministratorNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := s.comparer.Compare(administrator.Password, password); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(administrator)
	if err != nil {
		return "", nil, err
	}

	if s.audit != nil {
		s.audit.Record(ports.LoginEvent{Email: administrator.Email, At: time.Now().UTC()})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", administrator.Email).Str("profile", administrator.Profile.Label()).Msg("administrator signed in")

	return token, administrator, nil
}

// Create persists a new administrator. Validation has already happened at
// the boundary; the payload is stored as-is.
func (s *AdministratorService) Create(ctx context.Context, administrator *domain.Administrator) (*domain.Administrator, error) {
	created, err := s.repo.Create(ctx, administrator)
	if err != nil {
		s.logger.Error().Err(err).Str("email", administrator.Email).Msg("failed to create administrator")
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("administrator").Inc()
	s.logger.Info().Int("id", created.ID).Str("email", created.Email).Msg("administrator created")
	return created, nil
}

func (s *AdministratorService) GetByID(ctx context.Context, id int) (*domain.Administrator, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns administrators in store order. A nil page returns the full
// set; otherwise the fixed-size 1-indexed page is sliced out.
func (s *AdministratorService) List(ctx context.Context, page *int) ([]*domain.Administrator, error) {
	administrators, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return paginate(administrators, page), nil
}

// Update replaces the stored record by ID. Field merging is the caller's
// concern; last writer wins.
func (s *AdministratorService) Update(ctx context.Context, administrator *domain.Administrator) error {
	return s.repo.Update(ctx, administrator)
}

func (s *AdministratorService) Delete(ctx context.Context, administrator *domain.Administrator) error {
	if err := s.repo.Delete(ctx, administrator.ID); err != nil {
		return err
	}
	s.logger.Info().Int("id", administrator.ID).Msg("administrator deleted")
	return nil
}
