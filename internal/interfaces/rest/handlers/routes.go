package handlers

import (
	"net/http"

	"github.com/DanielPopoola/coinledger/internal/interfaces/rest"
	"github.com/gorilla/mux"
	"github.com/swaggo/swag"

	_ "github.com/DanielPopoola/coinledger/internal/docs"
)

// Routes builds the router. When staticDir is set, unmatched GET requests are
// served from it.
func (h *Handlers) Routes(staticDir string) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/purchases", h.ListPurchases).Methods(http.MethodGet)
	api.HandleFunc("/purchases/{id}", h.GetPurchase).Methods(http.MethodGet)
	api.HandleFunc("/purchases/{id}", h.UpdatePurchase).Methods(http.MethodPut)
	api.HandleFunc("/purchases/{id}", h.DeletePurchase).Methods(http.MethodDelete)
	api.HandleFunc("/markets", h.ListMarkets).Methods(http.MethodGet)
	api.HandleFunc("/markets/{market}/purchases", h.ListMarketPurchases).Methods(http.MethodGet)
	api.HandleFunc("/markets/{market}/purchases", h.CreatePurchase).Methods(http.MethodPost)
	api.HandleFunc("/exchange/markets", h.ExchangeMarkets).Methods(http.MethodGet)
	api.HandleFunc("/exchange/markets/{market}/ticker", h.ExchangeTicker).Methods(http.MethodGet)

	// paths used by the bundled web page
	r.HandleFunc("/bitcoin", h.BitcoinTicker).Methods(http.MethodGet)
	r.HandleFunc("/purchases", h.ListPurchases).Methods(http.MethodGet)
	r.HandleFunc("/purchase", h.CreateLegacyPurchase).Methods(http.MethodPost)
	r.HandleFunc("/purchase/{id}", h.UpdatePurchase).Methods(http.MethodPut)
	r.HandleFunc("/purchase/{id}", h.DeletePurchase).Methods(http.MethodDelete)

	r.HandleFunc("/swagger/doc.json", h.SwaggerDoc).Methods(http.MethodGet)

	if staticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir))).Methods(http.MethodGet, http.MethodHead)
	}

	return r
}

func (h *Handlers) SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteRaw(w, http.StatusOK, []byte(doc))
}
