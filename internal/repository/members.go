package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type MemberRepository struct {
	db   *sqlx.DB
	psql sq.StatementBuilderType
}

func NewMemberRepository(db *sqlx.DB) *MemberRepository {
	return &MemberRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// MemberRepositoryFilter narrows queries. Pointer fields are exact matches;
// Search fields are substring containment.
type MemberRepositoryFilter struct {
	ID       *int64
	Phone    *string
	Email    *string
	IsActive *bool
	Search   MemberSearchFilter
}

type MemberSearchFilter struct {
	MemberID *string
	Name     *string
	Phone    *string
	Email    *string
}

func (mq *MemberRepository) buildQuery(filter MemberRepositoryFilter, queryType QueryType) sq.SelectBuilder {
	var builder sq.SelectBuilder
	switch queryType {
	case QueryTypeSelect:
		builder = mq.psql.Select("*").From("members")
	case QueryTypeCount:
		builder = mq.psql.Select("COUNT(*)").From("members")
	}

	if filter.ID != nil {
		builder = builder.Where(sq.Eq{"id": *filter.ID})
	}
	if filter.Phone != nil {
		builder = builder.Where(sq.Eq{"phone": *filter.Phone})
	}
	if filter.Email != nil {
		builder = builder.Where(sq.Eq{"email": *filter.Email})
	}
	if filter.IsActive != nil {
		builder = builder.Where(sq.Eq{"is_active": *filter.IsActive})
	}

	if filter.Search.MemberID != nil {
		builder = builder.Where(sq.Like{"member_id": likePattern(*filter.Search.MemberID)})
	}
	if filter.Search.Name != nil {
		builder = builder.Where(sq.Like{"name": likePattern(*filter.Search.Name)})
	}
	if filter.Search.Phone != nil {
		builder = builder.Where(sq.Like{"phone": likePattern(*filter.Search.Phone)})
	}
	if filter.Search.Email != nil {
		builder = builder.Where(sq.Like{"email": likePattern(*filter.Search.Email)})
	}

	return builder
}

func (mq *MemberRepository) Get(ctx context.Context, filter MemberRepositoryFilter) (*Member, error) {
	query, args, err := mq.buildQuery(filter, QueryTypeSelect).ToSql()
	if err != nil {
		return nil, err
	}

	var member Member
	if err := mq.db.GetContext(ctx, &member, query, args...); err != nil {
		return nil, err
	}
	return &member, nil
}

func (mq *MemberRepository) Exists(ctx context.Context, filter MemberRepositoryFilter) (bool, error) {
	count, err := mq.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (mq *MemberRepository) Count(ctx context.Context, filter MemberRepositoryFilter) (int, error) {
	query, args, err := mq.buildQuery(filter, QueryTypeCount).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := mq.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// List returns a page of members ordered by creation time, newest first.
func (mq *MemberRepository) List(ctx context.Context, filter MemberRepositoryFilter, limit, offset uint64) ([]Member, error) {
	builder := mq.buildQuery(filter, QueryTypeSelect).
		OrderBy("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	members := []Member{}
	if err := mq.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, err
	}
	return members, nil
}

// Last returns the most recently created member by identifier, soft-deleted
// rows included. Callers get sql.ErrNoRows on an empty table.
func (mq *MemberRepository) Last(ctx context.Context) (*Member, error) {
	query, args, err := mq.psql.Select("*").
		From("members").
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var member Member
	if err := mq.db.GetContext(ctx, &member, query, args...); err != nil {
		return nil, err
	}
	return &member, nil
}

func (mq *MemberRepository) Create(ctx context.Context, member *Member) (*Member, error) {
	builder := mq.psql.Insert("members").
		Columns("member_id", "name", "phone", "email", "birthday", "note", "is_active").
		Values(member.MemberID, member.Name, member.Phone, member.Email, member.Birthday, member.Note, member.IsActive).
		Suffix("RETURNING *")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var createdMember Member
	err = mq.db.GetContext(ctx, &createdMember, query, args...)
	return &createdMember, err
}

// MemberUpdate carries a partial update: nil fields keep their stored value.
type MemberUpdate struct {
	Name     *string
	Phone    *string
	Email    *string
	Birthday *time.Time
	Note     *string
	IsActive *bool
}

func (mq *MemberRepository) Update(ctx context.Context, id int64, changes MemberUpdate) (*Member, error) {
	builder := mq.psql.Update("members")

	if changes.Name != nil {
		builder = builder.Set("name", *changes.Name)
	}
	if changes.Phone != nil {
		builder = builder.Set("phone", *changes.Phone)
	}
	if changes.Email != nil {
		builder = builder.Set("email", *changes.Email)
	}
	if changes.Birthday != nil {
		builder = builder.Set("birthday", *changes.Birthday)
	}
	if changes.Note != nil {
		builder = builder.Set("note", *changes.Note)
	}
	if changes.IsActive != nil {
		builder = builder.Set("is_active", *changes.IsActive)
	}

	builder = builder.
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING *")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var updatedMember Member
	err = mq.db.GetContext(ctx, &updatedMember, query, args...)
	return &updatedMember, err
}
