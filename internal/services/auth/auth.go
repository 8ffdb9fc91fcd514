package auth

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/hweilin/memberhub/internal/config"
	"github.com/hweilin/memberhub/internal/dto"
	"github.com/hweilin/memberhub/internal/repository"
	svc "github.com/hweilin/memberhub/internal/services"
	"github.com/hweilin/memberhub/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

var _ AdminRepository = (*repository.AdminRepository)(nil)

var _ TokenService = (*token.JWT)(nil)

type AdminRepository interface {
	Get(ctx context.Context, filter repository.AdminRepositoryFilter) (*repository.Admin, error)
}

type TokenService interface {
	Generate(adminID int64, username string) (string, error)
}

type Auth struct {
	Config       *config.Config
	TokenService TokenService
	AdminRepo    AdminRepository
}

func New(cfg *config.Config, tokenService TokenService, adminRepo AdminRepository) *Auth {
	return &Auth{
		Config:       cfg,
		TokenService: tokenService,
		AdminRepo:    adminRepo,
	}
}

// Login verifies admin credentials and issues a bearer token. Unknown
// usernames and wrong passwords produce the identical error so the response
// carries no enumeration signal.
func (a *Auth) Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResponse, error) {
	invalidCredentials := &svc.APIError{
		Status:  http.StatusUnauthorized,
		Message: "Invalid username or password",
	}

	admin, err := a.AdminRepo.Get(ctx, repository.AdminRepositoryFilter{
		Username: &input.Username,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, invalidCredentials
	}

	accessToken, err := a.TokenService.Generate(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		User: dto.AuthUser{
			ID:       admin.ID,
			Username: admin.Username,
		},
	}, nil
}

// ValidateUser confirms a token subject still resolves to a real admin. The
// guard calls this on every protected request.
func (a *Auth) ValidateUser(ctx context.Context, adminID int64) (*dto.AdminProfile, error) {
	admin, err := a.AdminRepo.Get(ctx, repository.AdminRepositoryFilter{
		ID: &adminID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &svc.APIError{
				Status:  http.StatusUnauthorized,
				Message: "Invalid user",
			}
		}
		return nil, err
	}

	return &dto.AdminProfile{
		ID:        admin.ID,
		Username:  admin.Username,
		CreatedAt: admin.CreatedAt,
	}, nil
}
