package member

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clubwallet/clubwallet/internal/fault"
)

// Handler exposes member HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a member HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
	Address      string `json:"address"`
	BloodGroup   string `json:"bloodGroup"`
	Nationality  string `json:"nationality"`
	Organization string `json:"organization"`
	ExpiryDate   string `json:"expiryDate"`
}

type memberResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
	Address      string `json:"address"`
	BloodGroup   string `json:"bloodGroup,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
	Organization string `json:"organization,omitempty"`
	WalletID     string `json:"walletId,omitempty"`
	ExpiresAt    string `json:"expiresAt,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// Register creates a member record.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	input := RegisterInput{
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Address:      req.Address,
		BloodGroup:   req.BloodGroup,
		Nationality:  req.Nationality,
		Organization: req.Organization,
	}
	if req.ExpiryDate != "" {
		expires, err := time.Parse(time.RFC3339, req.ExpiryDate)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "expiryDate must be RFC3339")
		}
		input.ExpiresAt = expires
	}

	m, err := h.service.Register(c.UserContext(), input)
	if err != nil {
		return fiber.NewError(fault.HTTPStatus(err), err.Error())
	}
	return c.Status(http.StatusCreated).JSON(toResponse(m))
}

// Get returns a single member.
func (h *Handler) Get(c *fiber.Ctx) error {
	m, err := h.service.Get(c.UserContext(), c.Params("memberId"))
	if err != nil {
		return fiber.NewError(fault.HTTPStatus(err), err.Error())
	}
	return c.Status(http.StatusOK).JSON(toResponse(m))
}

// List returns all members.
func (h *Handler) List(c *fiber.Ctx) error {
	members, err := h.service.List(c.UserContext())
	if err != nil {
		return fiber.NewError(fault.HTTPStatus(err), err.Error())
	}
	out := make([]memberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toResponse(m))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"members": out, "total": len(out)})
}

func toResponse(m Member) memberResponse {
	resp := memberResponse{
		ID:           m.ID,
		Name:         m.Name,
		MobileNumber: m.MobileNumber,
		Address:      m.Address,
		BloodGroup:   m.BloodGroup,
		Nationality:  m.Nationality,
		Organization: m.Organization,
		WalletID:     m.WalletID,
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
	}
	if !m.ExpiresAt.IsZero() {
		resp.ExpiresAt = m.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}
