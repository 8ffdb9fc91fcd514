package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type AdminRepository struct {
	db   *sqlx.DB
	psql sq.StatementBuilderType
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type AdminRepositoryFilter struct {
	ID       *int64
	Username *string
}

func (aq *AdminRepository) buildQuery(filter AdminRepositoryFilter) (string, []any, error) {
	builder := aq.psql.Select("*").From("admins")

	if filter.ID != nil {
		builder = builder.Where(sq.Eq{"id": *filter.ID})
	}
	if filter.Username != nil {
		builder = builder.Where(sq.Eq{"username": *filter.Username})
	}

	return builder.ToSql()
}

func (aq *AdminRepository) Get(ctx context.Context, filter AdminRepositoryFilter) (*Admin, error) {
	query, args, err := aq.buildQuery(filter)
	if err != nil {
		return nil, err
	}

	var admin Admin
	if err := aq.db.GetContext(ctx, &admin, query, args...); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (aq *AdminRepository) Create(ctx context.Context, admin *Admin) (*Admin, error) {
	builder := aq.psql.Insert("admins").
		Columns("username", "password_hash").
		Values(admin.Username, admin.PasswordHash).
		Suffix("ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username RETURNING *")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var createdAdmin Admin
	err = aq.db.GetContext(ctx, &createdAdmin, query, args...)
	return &createdAdmin, err
}
