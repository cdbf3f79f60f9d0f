package accesskey

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clubwallet/clubwallet/internal/fault"
)

// Handler exposes access key minting. Minting requires the club secret
// provisioned out-of-band via configuration.
type Handler struct {
	service    *Service
	clubSecret string
}

// NewHandler builds an access key HTTP handler.
func NewHandler(service *Service, clubSecret string) *Handler {
	return &Handler{service: service, clubSecret: clubSecret}
}

type mintRequest struct {
	Secret string `json:"secret"`
	Role   string `json:"role"`
}

// Mint issues a short-lived access key for club terminals.
func (h *Handler) Mint(c *fiber.Ctx) error {
	var req mintRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if h.clubSecret == "" || subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.clubSecret)) != 1 {
		return fiber.NewError(http.StatusUnauthorized, "invalid club secret")
	}

	token, key, err := h.service.Mint(c.UserContext(), req.Role)
	if err != nil {
		return fiber.NewError(fault.HTTPStatus(err), err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"accessKey": token,
		"role":      key.Role,
		"expiresAt": key.ExpiresAt.Format(time.RFC3339),
	})
}
