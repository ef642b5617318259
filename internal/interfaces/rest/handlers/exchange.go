package handlers

import (
	"net/http"

	"github.com/DanielPopoola/coinledger/internal/application/services"
	"github.com/DanielPopoola/coinledger/internal/interfaces/rest"
	"github.com/gorilla/mux"
)

const defaultMarket = services.LegacyTickerMarket

// ExchangeTicker godoc
// @Summary Exchange ticker for a market
// @Tags exchange
// @Produce json
// @Param market path string true "Market symbol"
// @Success 200 {object} object
// @Router /api/exchange/markets/{market}/ticker [get]
func (h *Handlers) ExchangeTicker(w http.ResponseWriter, r *http.Request) {
	h.relayTicker(w, r, mux.Vars(r)["market"])
}

// BitcoinTicker godoc
// @Summary BTC-USD ticker
// @Tags exchange
// @Produce json
// @Success 200 {object} object
// @Router /bitcoin [get]
func (h *Handlers) BitcoinTicker(w http.ResponseWriter, r *http.Request) {
	h.relayTicker(w, r, services.LegacyTickerMarket)
}

func (h *Handlers) relayTicker(w http.ResponseWriter, r *http.Request, market string) {
	resp, err := h.exchangeService.Ticker(r.Context(), market)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteRaw(w, resp.StatusCode, resp.Body)
}

// ExchangeMarkets godoc
// @Summary List exchange market symbols
// @Tags exchange
// @Produce json
// @Success 200 {array} string
// @Router /api/exchange/markets [get]
func (h *Handlers) ExchangeMarkets(w http.ResponseWriter, r *http.Request) {
	resp, err := h.exchangeService.Markets(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	if !resp.OK() {
		rest.WriteRaw(w, resp.StatusCode, resp.Body)
		return
	}

	symbols := resp.Symbols
	if symbols == nil {
		symbols = []string{}
	}
	rest.WriteJSON(w, http.StatusOK, symbols)
}
