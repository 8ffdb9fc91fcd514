package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hweilin/memberhub/internal/dto"
	svc "github.com/hweilin/memberhub/internal/services"
)

type envelope map[string]any

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// idParam parses the numeric {id} route parameter.
func (h *Handlers) idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, &svc.APIError{
			Status:  http.StatusBadRequest,
			Message: "Invalid member id",
		}
	}
	return id, nil
}

func (h *Handlers) getMemberQuery(r *http.Request) *dto.MemberQuery {
	// Defaults match the list contract: page 1, ten per page.
	q := dto.MemberQuery{Page: 1, PageSize: 10}

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			q.Page = n
		}
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > 100 {
				n = 100
			}
			q.PageSize = n
		}
	}

	if v := r.URL.Query().Get("memberId"); v != "" {
		q.MemberID = &v
	}
	if v := r.URL.Query().Get("name"); v != "" {
		q.Name = &v
	}
	if v := r.URL.Query().Get("phone"); v != "" {
		q.Phone = &v
	}
	if v := r.URL.Query().Get("email"); v != "" {
		q.Email = &v
	}

	return &q
}
