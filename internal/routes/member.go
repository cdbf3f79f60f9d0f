package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clubwallet/clubwallet/internal/member"
)

// RegisterMemberRoutes wires member directory endpoints.
func RegisterMemberRoutes(r fiber.Router, h *member.Handler) {
	r.Post("/members", h.Register)
	r.Get("/members", h.List)
	r.Get("/members/:memberId", h.Get)
}
