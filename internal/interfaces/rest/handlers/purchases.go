package handlers

import (
	"net/http"

	"github.com/DanielPopoola/coinledger/internal/interfaces/rest"
	"github.com/DanielPopoola/coinledger/internal/validation"
	"github.com/gorilla/mux"
)

// ListPurchases godoc
// @Summary List all purchases, newest first
// @Tags purchases
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/purchases [get]
func (h *Handlers) ListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.purchaseService.List(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toDocuments(purchases))
}

// ListMarketPurchases godoc
// @Summary List purchases for a market, newest first
// @Tags markets
// @Produce json
// @Param market path string true "Market symbol"
// @Success 200 {array} object
// @Router /api/markets/{market}/purchases [get]
func (h *Handlers) ListMarketPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.purchaseService.ListByMarket(r.Context(), mux.Vars(r)["market"])
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toDocuments(purchases))
}

// CreatePurchase godoc
// @Summary Record a purchase
// @Tags markets
// @Accept json
// @Produce json
// @Param market path string true "Market symbol"
// @Success 200 {object} object
// @Failure 400 {object} rest.InvalidResponse
// @Router /api/markets/{market}/purchases [post]
func (h *Handlers) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	h.createPurchase(w, r, mux.Vars(r)["market"])
}

// CreateLegacyPurchase records a purchase against the default BTC-USD market.
func (h *Handlers) CreateLegacyPurchase(w http.ResponseWriter, r *http.Request) {
	h.createPurchase(w, r, defaultMarket)
}

func (h *Handlers) createPurchase(w http.ResponseWriter, r *http.Request, market string) {
	body, err := validation.DecodeBody(r.Body)
	if err != nil {
		rest.WriteInvalid(w)
		return
	}

	purchase, err := h.purchaseService.Create(r.Context(), market, body)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, purchase.Document())
}

// GetPurchase godoc
// @Summary Get a purchase
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase id"
// @Success 200 {object} object
// @Failure 400 {object} rest.InvalidResponse
// @Failure 404 {object} rest.SuccessResponse
// @Router /api/purchases/{id} [get]
func (h *Handlers) GetPurchase(w http.ResponseWriter, r *http.Request) {
	purchase, err := h.purchaseService.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, purchase.Document())
}

// UpdatePurchase godoc
// @Summary Partially update a purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase id"
// @Success 200 {object} rest.SuccessResponse
// @Failure 400 {object} rest.InvalidResponse
// @Router /api/purchases/{id} [put]
func (h *Handlers) UpdatePurchase(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !validation.IsValidID(id) {
		rest.WriteInvalid(w)
		return
	}

	body, err := validation.DecodeBody(r.Body)
	if err != nil {
		rest.WriteInvalid(w)
		return
	}

	ok, err := h.purchaseService.Update(r.Context(), id, body)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteSuccess(w, ok)
}

// DeletePurchase godoc
// @Summary Delete a purchase
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase id"
// @Success 200 {object} rest.SuccessResponse
// @Failure 400 {object} rest.InvalidResponse
// @Router /api/purchases/{id} [delete]
func (h *Handlers) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	ok, err := h.purchaseService.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteSuccess(w, ok)
}

// ListMarkets godoc
// @Summary List markets that have purchases
// @Tags markets
// @Produce json
// @Success 200 {array} string
// @Router /api/markets [get]
func (h *Handlers) ListMarkets(w http.ResponseWriter, r *http.Request) {
	markets, err := h.purchaseService.Markets(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	if markets == nil {
		markets = []string{}
	}
	rest.WriteJSON(w, http.StatusOK, markets)
}
