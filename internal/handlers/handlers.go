package handlers

import (
	"net/http"

	_ "github.com/pointsward/loyalcore/docs"
	membershipshandlers "github.com/pointsward/loyalcore/internal/handlers/memberships"
	pointshandlers "github.com/pointsward/loyalcore/internal/handlers/points"
	redemptionshandlers "github.com/pointsward/loyalcore/internal/handlers/redemptions"
	"github.com/pointsward/loyalcore/internal/service"
	"github.com/pointsward/loyalcore/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type MembershipHandler interface {
	Enroll(w http.ResponseWriter, r *http.Request)
	GetMembership(w http.ResponseWriter, r *http.Request)
	GetLedger(w http.ResponseWriter, r *http.Request)
}

type PointsHandler interface {
	ApplyMovement(w http.ResponseWriter, r *http.Request)
}

type RedemptionHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Consume(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	MembershipHandler MembershipHandler
	PointsHandler     PointsHandler
	RedemptionHandler RedemptionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		MembershipHandler: membershipshandlers.New(s.MembershipService),
		PointsHandler:     pointshandlers.New(s.LedgerService),
		RedemptionHandler: redemptionshandlers.New(s.RedemptionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/loyalty", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/memberships", func(r chi.Router) {
			r.Post("/", h.MembershipHandler.Enroll)
			r.Get("/{membershipID}", h.MembershipHandler.GetMembership)
			r.Get("/{membershipID}/ledger", h.MembershipHandler.GetLedger)
		})
		r.Post("/points/movements", h.PointsHandler.ApplyMovement)
		r.Route("/redemptions", func(r chi.Router) {
			r.Post("/", h.RedemptionHandler.Issue)
			r.Get("/{code}", h.RedemptionHandler.Get)
			r.Post("/{code}/consume", h.RedemptionHandler.Consume)
			r.Post("/{code}/cancel", h.RedemptionHandler.Cancel)
		})
	})

	return r
}
