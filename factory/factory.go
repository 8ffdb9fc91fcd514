package factory

import (
	"github.com/go-chi/chi/v5"
	"github.com/hweilin/memberhub/internal/config"
	"github.com/hweilin/memberhub/internal/middleware"
	"github.com/hweilin/memberhub/internal/repository"
	"github.com/hweilin/memberhub/internal/services/auth"
	"github.com/hweilin/memberhub/internal/services/members"
	"github.com/hweilin/memberhub/pkg/database"
	"github.com/hweilin/memberhub/pkg/logger"
	"github.com/hweilin/memberhub/pkg/token"
)

type Repositories struct {
	Member *repository.MemberRepository
	Admin  *repository.AdminRepository
}

type Services struct {
	Member *members.Member
	Auth   *auth.Auth
}

type Factory struct {
	DB           *database.PostgresDB
	Logger       *logger.Logger
	JWTToken     *token.JWT
	Router       *chi.Mux
	Services     *Services
	Repositories *Repositories
	Middleware   *middleware.Middleware
}

func New(cfg *config.Config) (*Factory, func(), error) {
	log := logger.New(cfg)

	db, cleanup, err := database.New(cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}

	jwtToken := token.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)

	memberRepo := repository.NewMemberRepository(db.DB)
	adminRepo := repository.NewAdminRepository(db.DB)

	memberService := members.New(cfg, memberRepo)
	authService := auth.New(cfg, jwtToken, adminRepo)

	mw := middleware.New(jwtToken, authService, log)

	return &Factory{
			DB:       db,
			Logger:   log,
			JWTToken: jwtToken,
			Router:   chi.NewRouter(),
			Services: &Services{
				Member: memberService,
				Auth:   authService,
			},
			Repositories: &Repositories{
				Member: memberRepo,
				Admin:  adminRepo,
			},
			Middleware: mw,
		}, func() {
			cleanup()
		}, nil
}
