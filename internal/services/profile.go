package services

import (
	"context"
	"errors"

	"github.com/mareviva/mareviva/internal/common"
	"github.com/mareviva/mareviva/internal/logging"
	"github.com/mareviva/mareviva/internal/models"
	"github.com/mareviva/mareviva/internal/repositories/profiles"
)

// ProfileService manages the editable profile kept alongside the user
// identity record. A profile is seeded lazily from the identity at login;
// after that the two records live independently — editing the profile never
// touches the user record, and renaming the account never updates the
// profile.
type ProfileService interface {
	// Profile returns the stored profile, or nil when the user never got
	// one.
	Profile(ctx context.Context, userID string) *models.UserProfile

	// UpdateProfile creates or replaces the profile for p.UserID.
	UpdateProfile(ctx context.Context, p *models.UserProfile) models.Result

	// CreateProfileFromUser seeds a profile mirroring the user's current
	// name and email. No-op when a profile already exists. Failures are
	// logged and swallowed.
	CreateProfileFromUser(ctx context.Context, u *models.User, address string)
}

type profileService struct {
	profiles profiles.Repository
	log      logging.Logger
}

// NewProfileService constructs a ProfileService over the given repository.
func NewProfileService(profiles profiles.Repository, log logging.Logger) ProfileService {
	return &profileService{profiles: profiles, log: log}
}

func (s *profileService) Profile(ctx context.Context, userID string) *models.UserProfile {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "profile read failed", "error", err)
		}
		return nil
	}
	return p
}

func (s *profileService) UpdateProfile(ctx context.Context, p *models.UserProfile) models.Result {
	if p.Name == "" || p.Email == "" {
		return models.Failure("Nome e email são obrigatórios")
	}

	if err := s.profiles.Upsert(ctx, p); err != nil {
		s.log.Error(ctx, "profile save failed", "error", err)
		return models.Failure("Erro ao atualizar perfil. Tente novamente.")
	}
	return models.OK("Perfil atualizado com sucesso!")
}

func (s *profileService) CreateProfileFromUser(ctx context.Context, u *models.User, address string) {
	if s.Profile(ctx, u.ID) != nil {
		return
	}

	err := s.profiles.Upsert(ctx, &models.UserProfile{
		UserID:  u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: address,
	})
	if err != nil {
		s.log.Error(ctx, "profile seed failed", "error", err)
	}
}
