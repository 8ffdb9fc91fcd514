package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hweilin/memberhub/internal/config"
	"github.com/hweilin/memberhub/internal/dto"
	"github.com/hweilin/memberhub/internal/repository"
	svc "github.com/hweilin/memberhub/internal/services"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

var _ MemberRepository = (*repository.MemberRepository)(nil)

type MemberRepository interface {
	Get(ctx context.Context, filter repository.MemberRepositoryFilter) (*repository.Member, error)
	Exists(ctx context.Context, filter repository.MemberRepositoryFilter) (bool, error)
	Count(ctx context.Context, filter repository.MemberRepositoryFilter) (int, error)
	List(ctx context.Context, filter repository.MemberRepositoryFilter, limit, offset uint64) ([]repository.Member, error)
	Last(ctx context.Context) (*repository.Member, error)
	Create(ctx context.Context, member *repository.Member) (*repository.Member, error)
	Update(ctx context.Context, id int64, changes repository.MemberUpdate) (*repository.Member, error)
}

type Member struct {
	Config           *config.Config
	MemberRepository MemberRepository
}

func New(cfg *config.Config, memberRepo MemberRepository) *Member {
	return &Member{
		Config:           cfg,
		MemberRepository: memberRepo,
	}
}

// generateMemberID derives the next business identifier from the newest row.
// It is advisory: the unique constraint on member_id is the real guard, and
// two concurrent creates can race on this read. See Create.
func (m *Member) generateMemberID(ctx context.Context) (string, error) {
	last, err := m.MemberRepository.Last(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "M00001", nil
		}
		return "", err
	}

	return fmt.Sprintf("M%05d", last.ID+1), nil
}

func (m *Member) Create(ctx context.Context, input *dto.CreateMemberInput) (*dto.Member, error) {
	phoneExists, err := m.MemberRepository.Exists(ctx, repository.MemberRepositoryFilter{
		Phone: &input.Phone,
	})
	if err != nil {
		return nil, err
	}
	if phoneExists {
		return nil, &svc.APIError{
			Status:  http.StatusConflict,
			Message: "Phone number already in use",
		}
	}

	if input.Email != nil {
		emailExists, err := m.MemberRepository.Exists(ctx, repository.MemberRepositoryFilter{
			Email: input.Email,
		})
		if err != nil {
			return nil, err
		}
		if emailExists {
			return nil, &svc.APIError{
				Status:  http.StatusConflict,
				Message: "Email already in use",
			}
		}
	}

	birthday, err := parseBirthday(input.Birthday)
	if err != nil {
		return nil, err
	}

	memberID, err := m.generateMemberID(ctx)
	if err != nil {
		return nil, err
	}

	member, err := m.MemberRepository.Create(ctx, &repository.Member{
		MemberID: memberID,
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    repository.ToNullString(input.Email),
		Birthday: repository.ToNullTime(birthday),
		Note:     repository.ToNullString(input.Note),
		IsActive: true,
	})
	if err != nil {
		// The pre-checks above are not atomic with the insert; the unique
		// constraints are authoritative under concurrency.
		return nil, mapUniqueViolation(err)
	}

	return mapRepositoryToDTO(member), nil
}

func (m *Member) FindAll(ctx context.Context, query *dto.MemberQuery) (*dto.MemberList, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	filter := repository.MemberRepositoryFilter{
		IsActive: lo.ToPtr(true),
		Search: repository.MemberSearchFilter{
			MemberID: query.MemberID,
			Name:     query.Name,
			Phone:    query.Phone,
			Email:    query.Email,
		},
	}

	total, err := m.MemberRepository.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	offset := uint64(page-1) * uint64(pageSize)
	members, err := m.MemberRepository.List(ctx, filter, uint64(pageSize), offset)
	if err != nil {
		return nil, err
	}

	return &dto.MemberList{
		Data: lo.Map(members, func(member repository.Member, _ int) dto.Member {
			return *mapRepositoryToDTO(&member)
		}),
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

// FindOne looks a member up by numeric identifier. Soft-deleted members are
// still retrievable here.
func (m *Member) FindOne(ctx context.Context, id int64) (*dto.Member, error) {
	member, err := m.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapRepositoryToDTO(member), nil
}

func (m *Member) findRow(ctx context.Context, id int64) (*repository.Member, error) {
	member, err := m.MemberRepository.Get(ctx, repository.MemberRepositoryFilter{
		ID: &id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &svc.APIError{
				Status:  http.StatusNotFound,
				Message: "Member not found",
			}
		}
		return nil, err
	}
	return member, nil
}

func (m *Member) Update(ctx context.Context, id int64, input *dto.UpdateMemberInput) (*dto.Member, error) {
	member, err := m.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Phone != nil && *input.Phone != member.Phone {
		phoneExists, err := m.MemberRepository.Exists(ctx, repository.MemberRepositoryFilter{
			Phone: input.Phone,
		})
		if err != nil {
			return nil, err
		}
		if phoneExists {
			return nil, &svc.APIError{
				Status:  http.StatusConflict,
				Message: "Phone number already in use",
			}
		}
	}

	if input.Email != nil && (!member.Email.Valid || *input.Email != member.Email.String) {
		emailExists, err := m.MemberRepository.Exists(ctx, repository.MemberRepositoryFilter{
			Email: input.Email,
		})
		if err != nil {
			return nil, err
		}
		if emailExists {
			return nil, &svc.APIError{
				Status:  http.StatusConflict,
				Message: "Email already in use",
			}
		}
	}

	birthday, err := parseBirthday(input.Birthday)
	if err != nil {
		return nil, err
	}

	updatedMember, err := m.MemberRepository.Update(ctx, member.ID, repository.MemberUpdate{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		Birthday: birthday,
		Note:     input.Note,
		IsActive: input.IsActive,
	})
	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	return mapRepositoryToDTO(updatedMember), nil
}

// Remove soft-deletes a member. The row stays retrievable by id, so removing
// an already removed member succeeds and leaves it inactive.
func (m *Member) Remove(ctx context.Context, id int64) (*dto.RemoveMemberResult, error) {
	member, err := m.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	removedMember, err := m.MemberRepository.Update(ctx, member.ID, repository.MemberUpdate{
		IsActive: lo.ToPtr(false),
	})
	if err != nil {
		return nil, err
	}

	return &dto.RemoveMemberResult{
		Message: "Member deleted",
		Member:  *mapRepositoryToDTO(removedMember),
	}, nil
}

// parseBirthday validates an optional birthday against today at midnight
// granularity: today passes, tomorrow fails.
func parseBirthday(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	birthday, err := time.ParseInLocation(dto.BirthdayFormat, *raw, time.Local)
	if err != nil {
		return nil, &svc.APIError{
			Status:  http.StatusBadRequest,
			Message: "Invalid birthday format",
		}
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if birthday.After(today) {
		return nil, &svc.APIError{
			Status:  http.StatusBadRequest,
			Message: "Birthday must not be later than today",
		}
	}

	return &birthday, nil
}

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return &svc.APIError{
			Status:  http.StatusConflict,
			Message: "Phone number or email already in use",
		}
	}
	return err
}

func mapRepositoryToDTO(member *repository.Member) *dto.Member {
	var email, note *string
	if member.Email.Valid {
		email = &member.Email.String
	}
	if member.Note.Valid {
		note = &member.Note.String
	}

	var birthday *string
	if member.Birthday.Valid {
		birthday = lo.ToPtr(member.Birthday.Time.Format(dto.BirthdayFormat))
	}

	return &dto.Member{
		ID:        member.ID,
		MemberID:  member.MemberID,
		Name:      member.Name,
		Phone:     member.Phone,
		Email:     email,
		Birthday:  birthday,
		Note:      note,
		IsActive:  member.IsActive,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}
