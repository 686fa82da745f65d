package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"ktlogistics/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	loadingAdvanceHandler *handlers.LoadingAdvanceHandler,
	ackHandler *handlers.AcknowledgementHandler,
	refHandler *handlers.ReferenceHandler,
	rateCardHandler *handlers.RateCardHandler,
) http.Handler {
	r := mux.NewRouter()

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return handlers.RecoverWrapper(h)
	}

	// Loading advance routes
	r.HandleFunc("/api/loading-advances/next-voucher", wrap(loadingAdvanceHandler.NextVoucherNumber)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/loading-advances", wrap(loadingAdvanceHandler.CreateLoadingAdvance)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/loading-advances", wrap(loadingAdvanceHandler.GetLoadingAdvances)).Methods(http.MethodGet)
	r.HandleFunc("/api/loading-advances/{id:[0-9]+}/invoices", wrap(loadingAdvanceHandler.GetLoadingAdvanceInvoices)).Methods(http.MethodGet, http.MethodOptions)

	// Acknowledgement routes
	r.HandleFunc("/api/acknowledgements", wrap(ackHandler.CreateAcknowledgement)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/acknowledgements", wrap(ackHandler.GetAcknowledgements)).Methods(http.MethodGet)

	// Master data routes
	r.HandleFunc("/api/vehicles", wrap(refHandler.CreateVehicle)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/vehicles", wrap(refHandler.GetVehicles)).Methods(http.MethodGet)
	r.HandleFunc("/api/products", wrap(refHandler.CreateProduct)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/products", wrap(refHandler.GetProducts)).Methods(http.MethodGet)
	r.HandleFunc("/api/pumps", wrap(refHandler.CreatePump)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/pumps", wrap(refHandler.GetPumps)).Methods(http.MethodGet)
	r.HandleFunc("/api/drivers", wrap(refHandler.CreateDriver)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/drivers", wrap(refHandler.GetDrivers)).Methods(http.MethodGet)
	r.HandleFunc("/api/places", wrap(refHandler.CreatePlace)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/places", wrap(refHandler.GetPlaces)).Methods(http.MethodGet)
	r.HandleFunc("/api/dealers", wrap(refHandler.CreateDealer)).Methods(http.MethodPost, http.MethodOptions)

	// Rate card routes
	r.HandleFunc("/api/rate-cards", wrap(rateCardHandler.CreateRateCard)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/rate-cards", wrap(rateCardHandler.GetRateCards)).Methods(http.MethodGet)
	r.HandleFunc("/api/rate-cards/lookup", wrap(rateCardHandler.LookupRateCard)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/places/{id:[0-9]+}/rate-cards", wrap(rateCardHandler.AttachToPlace)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/places/{id:[0-9]+}/rate-cards", wrap(rateCardHandler.GetPlaceRateCards)).Methods(http.MethodGet)

	return withCORS(r)
}
