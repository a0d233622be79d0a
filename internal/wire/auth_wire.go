package wire

import (
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/adaptor"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/internal/data/repository"
	"github.com/imeshipunsara/OceanViewReservationManagementSystem/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/staff/login - Staff login (public)
	r.Post("/api/staff/login", authHandler.Login)

	// POST /api/staff/logout - Revoke the current session
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/staff/logout", authHandler.Logout)
}
