package ledger

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clubwallet/clubwallet/internal/fault"
	"github.com/clubwallet/clubwallet/internal/wallet"
)

// Handler exposes transaction posting and history endpoints.
type Handler struct {
	engine *Engine
}

// NewHandler builds a ledger HTTP handler.
func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

type postRequest struct {
	MemberID      string `json:"memberId"`
	Type          string `json:"type"`
	PayableAmount *int64 `json:"payableAmount"`
	CouponAmount  *int64 `json:"couponAmount"`
}

// Post records a transaction against the member's wallet.
func (h *Handler) Post(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.MemberID == "" {
		return fiber.NewError(http.StatusBadRequest, "memberId is required")
	}
	if req.PayableAmount == nil || req.CouponAmount == nil {
		return fiber.NewError(http.StatusBadRequest, "payableAmount and couponAmount are required")
	}

	txn, err := h.engine.Post(c.UserContext(), PostInput{
		MemberID:      req.MemberID,
		Type:          req.Type,
		PayableAmount: *req.PayableAmount,
		CouponAmount:  *req.CouponAmount,
	})
	if err != nil {
		return fiber.NewError(fault.HTTPStatus(err), err.Error())
	}
	return c.Status(http.StatusCreated).JSON(wallet.ToTransactionResponse(txn))
}

// List returns the member's transaction history with optional filters.
func (h *Handler) List(c *fiber.Ctx) error {
	in := QueryInput{
		MemberID: c.Params("memberId"),
		Type:     c.Query("type"),
		SortBy:   c.Query("sortBy"),
	}
	if in.MemberID == "" {
		return fiber.NewError(http.StatusBadRequest, "memberId is required")
	}

	var err error
	if in.Start, err = parseDate(c.Query("startDate")); err != nil {
		return fiber.NewError(http.StatusBadRequest, "startDate must be RFC3339 or YYYY-MM-DD")
	}
	if in.End, err = parseDate(c.Query("endDate")); err != nil {
		return fiber.NewError(http.StatusBadRequest, "endDate must be RFC3339 or YYYY-MM-DD")
	}
	if v := c.Query("page"); v != "" {
		if in.Page, err = strconv.Atoi(v); err != nil || in.Page < 1 {
			return fiber.NewError(http.StatusBadRequest, "page must be a positive integer")
		}
	}
	if v := c.Query("pageSize"); v != "" {
		if in.PageSize, err = strconv.Atoi(v); err != nil || in.PageSize < 1 {
			return fiber.NewError(http.StatusBadRequest, "pageSize must be a positive integer")
		}
	}

	transactions, err := h.engine.Query(c.UserContext(), in)
	if err != nil {
		return fiber.NewError(fault.HTTPStatus(err), err.Error())
	}

	out := make([]wallet.TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		out = append(out, wallet.ToTransactionResponse(txn))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"transactions": out, "count": len(out)})
}

// Summary reports overall posting volume.
func (h *Handler) Summary(c *fiber.Ctx) error {
	s, err := h.engine.Summary(c.UserContext())
	if err != nil {
		return fiber.NewError(fault.HTTPStatus(err), err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"totalTransactions":  s.Total,
		"todaysTransactions": s.Today,
	})
}

func parseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", v)
}
