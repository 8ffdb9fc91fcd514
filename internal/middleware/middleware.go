package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hweilin/memberhub/internal/dto"
	"github.com/hweilin/memberhub/pkg/logger"
	"github.com/hweilin/memberhub/pkg/token"
)

type AdminValidator interface {
	ValidateUser(ctx context.Context, adminID int64) (*dto.AdminProfile, error)
}

type Middleware struct {
	TokenSvc *token.JWT
	Auth     AdminValidator
	Logger   *logger.Logger
}

func New(tokenSvc *token.JWT, authSvc AdminValidator, log *logger.Logger) *Middleware {
	return &Middleware{
		TokenSvc: tokenSvc,
		Auth:     authSvc,
		Logger:   log,
	}
}

func (m *Middleware) apiError(w http.ResponseWriter, r *http.Request, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"statusCode": code,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"path":       r.URL.Path,
		"method":     r.Method,
		"message":    message,
		"requestId":  GetRequestID(r.Context()),
	})
}
