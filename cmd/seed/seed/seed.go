package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hweilin/memberhub/factory"
	"github.com/hweilin/memberhub/internal/config"
	"github.com/hweilin/memberhub/internal/dto"
	"github.com/hweilin/memberhub/internal/repository"
	"github.com/hweilin/memberhub/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

type Seed struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Factory *factory.Factory
}

func NewSeeder(cfg *config.Config) (*Seed, func(), error) {
	factory, cleanup, err := factory.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize factory: %w", err)
	}

	return &Seed{
		Config:  cfg,
		DB:      factory.DB,
		Factory: factory,
	}, cleanup, nil
}

// CreateAdmin provisions the default admin account. Reseeding keeps the
// existing password.
func (s *Seed) CreateAdmin() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), s.Config.Auth.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	query, args, err := s.DB.SqlBuilder.Insert("admins").
		Columns("username", "password_hash").
		Values(defaultAdminUsername, string(hashedPassword)).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()
	if err != nil {
		log.Fatalf("Failed to build admin seed query: %v", err)
	}

	if _, err := s.DB.DB.ExecContext(ctx, query, args...); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	fmt.Printf("Admin account ready: %s\n", defaultAdminUsername)
}

func (s *Seed) CreateSampleMembers() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	samples := []dto.CreateMemberInput{
		{
			Name:     "Wang Hsiao-ming",
			Phone:    "0912345678",
			Email:    strPtr("wang@example.com"),
			Birthday: strPtr("1990-01-15"),
			Note:     strPtr("sample member 1"),
		},
		{
			Name:     "Lee Hsiao-hua",
			Phone:    "0987654321",
			Email:    strPtr("lee@example.com"),
			Birthday: strPtr("1985-05-20"),
			Note:     strPtr("sample member 2"),
		},
		{
			Name:     "Chang San",
			Phone:    "0923456789",
			Birthday: strPtr("1995-12-10"),
		},
	}

	for _, sample := range samples {
		exists, err := s.Factory.Repositories.Member.Exists(ctx, memberPhoneFilter(sample.Phone))
		if err != nil {
			log.Fatalf("Failed to check sample member: %v", err)
		}
		if exists {
			continue
		}

		member, err := s.Factory.Services.Member.Create(ctx, &sample)
		if err != nil {
			log.Fatalf("Failed to seed member %s: %v", sample.Name, err)
		}
		fmt.Printf("Seeded member %s - %s\n", member.MemberID, member.Name)
	}
}

func memberPhoneFilter(phone string) repository.MemberRepositoryFilter {
	return repository.MemberRepositoryFilter{Phone: &phone}
}

func strPtr(s string) *string { return &s }
