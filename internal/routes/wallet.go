package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clubwallet/clubwallet/internal/ledger"
	"github.com/clubwallet/clubwallet/internal/wallet"
)

// RegisterWalletRoutes wires wallet and transaction endpoints.
func RegisterWalletRoutes(r fiber.Router, wh *wallet.Handler, lh *ledger.Handler) {
	r.Post("/wallets", wh.Create)
	r.Get("/wallets/:memberId", wh.Get)

	r.Post("/transactions", lh.Post)
	r.Get("/transactions/summary", lh.Summary)
	r.Get("/transactions/:memberId", lh.List)
}
