package dto

import "time"

const BirthdayFormat = "2006-01-02"

type CreateMemberInput struct {
	Name     string  `json:"name" validate:"required"`
	Phone    string  `json:"phone" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Birthday *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Note     *string `json:"note,omitempty"`
}

// UpdateMemberInput carries a partial update: nil fields are left untouched.
// There is no sentinel for clearing a field, so a birthday or note can be
// replaced but not removed once set.
type UpdateMemberInput struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Birthday *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Note     *string `json:"note,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type MemberQuery struct {
	Page     int
	PageSize int
	MemberID *string
	Name     *string
	Phone    *string
	Email    *string
}

type Member struct {
	ID        int64     `json:"id"`
	MemberID  string    `json:"memberId"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email"`
	Birthday  *string   `json:"birthday"`
	Note      *string   `json:"note"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MemberList struct {
	Data       []Member `json:"data"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	Total      int      `json:"total"`
	TotalPages int      `json:"totalPages"`
}

type RemoveMemberResult struct {
	Message string `json:"message"`
	Member  Member `json:"member"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type AuthResponse struct {
	AccessToken string   `json:"accessToken"`
	User        AuthUser `json:"user"`
}

type AdminProfile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
