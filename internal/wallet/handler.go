package wallet

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clubwallet/clubwallet/internal/fault"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	MemberID       string `json:"memberId"`
	InitialBalance int64  `json:"initialBalance"`
}

type walletResponse struct {
	ID        string `json:"id"`
	MemberID  string `json:"memberId"`
	Balance   int64  `json:"balance"`
	CreatedAt string `json:"createdAt"`
}

// TransactionResponse is the wire shape of a posting record.
type TransactionResponse struct {
	ID            string `json:"id"`
	WalletID      string `json:"walletId"`
	MemberID      string `json:"memberId"`
	CouponID      string `json:"couponId"`
	PayableAmount int64  `json:"payableAmount"`
	CouponAmount  int64  `json:"couponAmount"`
	WalletAmount  int64  `json:"walletAmount"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

// ToTransactionResponse converts a transaction to its wire shape.
func ToTransactionResponse(txn Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            txn.ID,
		WalletID:      txn.WalletID,
		MemberID:      txn.MemberID,
		CouponID:      txn.CouponID,
		PayableAmount: txn.PayableAmount,
		CouponAmount:  txn.CouponAmount,
		WalletAmount:  txn.WalletAmount,
		Type:          txn.Type,
		Status:        txn.Status,
		Timestamp:     txn.CreatedAt.Format(time.RFC3339Nano),
	}
}

// Create provisions a wallet for a member.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.MemberID == "" {
		return fiber.NewError(http.StatusBadRequest, "memberId is required")
	}

	w, err := h.service.Create(c.UserContext(), CreateInput{MemberID: req.MemberID, InitialBalance: req.InitialBalance})
	if err != nil {
		return fiber.NewError(fault.HTTPStatus(err), err.Error())
	}
	return c.Status(http.StatusCreated).JSON(walletResponse{
		ID:        w.ID,
		MemberID:  w.MemberID,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	})
}

// Get returns the member's wallet with its transaction history.
func (h *Handler) Get(c *fiber.Ctx) error {
	memberID := c.Params("memberId")
	if memberID == "" {
		return fiber.NewError(http.StatusBadRequest, "memberId is required")
	}

	w, transactions, err := h.service.Get(c.UserContext(), memberID)
	if err != nil {
		return fiber.NewError(fault.HTTPStatus(err), err.Error())
	}

	history := make([]TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		history = append(history, ToTransactionResponse(txn))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"wallet": walletResponse{
			ID:        w.ID,
			MemberID:  w.MemberID,
			Balance:   w.Balance,
			CreatedAt: w.CreatedAt.Format(time.RFC3339),
		},
		"transactions": history,
	})
}
