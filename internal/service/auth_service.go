package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/nandraak/siakad/config"
	"github.com/nandraak/siakad/internal/apperrors"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/identity"
	"github.com/nandraak/siakad/internal/model"
	"github.com/nandraak/siakad/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthService registers accounts, verifies credentials and issues session
// tokens. The role is never client-supplied: it comes from the NIM prefix
// at registration and is read back verbatim from the profile store on
// login.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.ProfileResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Profile(ctx context.Context, nim string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, nim string, req dto.ProfileUpdateRequest) (*dto.ProfileResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.ProfileResponse, error) {
	if req.NIM == "" {
		return nil, apperrors.NewValidationError("NIM is required")
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError("password is required")
	}

	if _, err := s.userRepo.FindByNIM(ctx, req.NIM); err == nil {
		return nil, apperrors.NewValidationError("NIM %s is already registered", req.NIM)
	} else if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("checking existing NIM: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	id := identity.Resolve(req.NIM)
	user := model.User{
		NIM:          req.NIM,
		Name:         req.Name,
		Email:        id.Credential,
		Role:         string(id.Role),
		PasswordHash: string(hash),
		BirthPlace:   req.BirthPlace,
		BirthDate:    req.BirthDate,
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		log.Error().Err(err).Str("nim", req.NIM).Msg("Failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var resp dto.ProfileResponse
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByNIM(ctx, req.NIM)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// Same failure as a wrong password; login never reveals which.
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrPermissionDenied
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.NIM,
		"name": user.Name,
		"role": user.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &dto.LoginResponse{
		Token: signed,
		NIM:   user.NIM,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (s *authService) Profile(ctx context.Context, nim string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByNIM(ctx, nim)
	if err != nil {
		return nil, err
	}
	var resp dto.ProfileResponse
	copier.Copy(&resp, user)
	return &resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, nim string, req dto.ProfileUpdateRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByNIM(ctx, nim)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.BirthPlace = req.BirthPlace
	user.BirthDate = req.BirthDate
	user.PhotoURL = req.PhotoURL
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	var resp dto.ProfileResponse
	copier.Copy(&resp, user)
	return &resp, nil
}
