package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/internal/detail/usecase/command"
	"github.com/tair/storefront/internal/detail/usecase/query"
	"github.com/tair/storefront/pkg/logger"
)

// DetailHandler handles HTTP requests for the product-detail surface
// using CQRS pattern
type DetailHandler struct {
	// Command handlers
	startHandler       *command.StartSessionHandler
	selectHandler      *command.SelectVariantHandler
	stepHandler        *command.StepQuantityHandler
	setQuantityHandler *command.SetQuantityHandler
	addToCartHandler   *command.AddToCartHandler
	buyNowHandler      *command.BuyNowHandler

	// Query handlers
	getSessionHandler  *query.GetSessionHandler
	listReviewsHandler *query.ListReviewsHandler

	repo           domain.SessionRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	activeSessions prometheus.Gauge
}

// NewDetailHandler creates a new detail handler with CQRS pattern
// (manual DI for backwards compatibility)
func NewDetailHandler(
	repo domain.SessionRepository,
	pending domain.PendingStore,
	catalog domain.Catalog,
	cart domain.CartGateway,
	auth domain.AuthProvider,
	events command.EventPublisher,
) *DetailHandler {
	return NewDetailHandlerWithDI(
		command.NewStartSessionHandler(repo, catalog),
		command.NewSelectVariantHandler(repo),
		command.NewStepQuantityHandler(repo),
		command.NewSetQuantityHandler(repo),
		command.NewAddToCartHandler(repo, cart, pending, auth, events),
		command.NewBuyNowHandler(repo, pending, auth, events),
		query.NewGetSessionHandler(repo),
		query.NewListReviewsHandler(repo),
		repo,
	)
}

// NewDetailHandlerWithDI creates a new detail handler using dependency
// injection. This is used by Wire for automatic dependency injection.
func NewDetailHandlerWithDI(
	startHandler *command.StartSessionHandler,
	selectHandler *command.SelectVariantHandler,
	stepHandler *command.StepQuantityHandler,
	setQuantityHandler *command.SetQuantityHandler,
	addToCartHandler *command.AddToCartHandler,
	buyNowHandler *command.BuyNowHandler,
	getSessionHandler *query.GetSessionHandler,
	listReviewsHandler *query.ListReviewsHandler,
	repo domain.SessionRepository,
) *DetailHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_detail_requests_total",
			Help: "Total number of requests to the detail service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_detail_request_duration_seconds",
			Help:    "Duration of detail service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_detail_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	activeSessions := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_detail_active_sessions",
			Help: "Number of live product-detail sessions",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(activeSessions)

	return &DetailHandler{
		startHandler:       startHandler,
		selectHandler:      selectHandler,
		stepHandler:        stepHandler,
		setQuantityHandler: setQuantityHandler,
		addToCartHandler:   addToCartHandler,
		buyNowHandler:      buyNowHandler,
		getSessionHandler:  getSessionHandler,
		listReviewsHandler: listReviewsHandler,
		repo:               repo,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		requestSummary:     requestSummary,
		activeSessions:     activeSessions,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *DetailHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *DetailHandler) RegisterRoutes(router *mux.Router) {
	// Every route is usable by guests; a bearer token only changes the
	// purchase-action branch.
	router.HandleFunc("/api/detail/{productID}/sessions",
		h.metricsMiddleware("/api/detail/{productID}/sessions", h.StartSession)).Methods("POST")
	router.HandleFunc("/api/detail/sessions/{sessionID}",
		h.metricsMiddleware("/api/detail/sessions/{sessionID}", h.GetSession)).Methods("GET")
	router.HandleFunc("/api/detail/sessions/{sessionID}/selection",
		h.metricsMiddleware("/api/detail/sessions/{sessionID}/selection", h.UpdateSelection)).Methods("PUT")
	router.HandleFunc("/api/detail/sessions/{sessionID}/quantity/step",
		h.metricsMiddleware("/api/detail/sessions/{sessionID}/quantity/step", h.StepQuantity)).Methods("POST")
	router.HandleFunc("/api/detail/sessions/{sessionID}/quantity",
		h.metricsMiddleware("/api/detail/sessions/{sessionID}/quantity", h.SetQuantity)).Methods("PUT")
	router.HandleFunc("/api/detail/sessions/{sessionID}/cart",
		h.metricsMiddleware("/api/detail/sessions/{sessionID}/cart", OptionalAuthMiddleware(h.AddToCart))).Methods("POST")
	router.HandleFunc("/api/detail/sessions/{sessionID}/checkout",
		h.metricsMiddleware("/api/detail/sessions/{sessionID}/checkout", OptionalAuthMiddleware(h.BuyNow))).Methods("POST")
	router.HandleFunc("/api/detail/sessions/{sessionID}/reviews",
		h.metricsMiddleware("/api/detail/sessions/{sessionID}/reviews", h.ListReviews)).Methods("GET")
}

// StartSession handles POST /api/detail/{productID}/sessions
func (h *DetailHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	session, err := h.startHandler.Handle(r.Context(), command.StartSessionCommand{
		ProductID: vars["productID"],
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to start detail session")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateSessionsMetric(r)

	if !session.Loaded() {
		// The catalog fetch failed; the session exists but stays in its
		// loading state with no retry surface.
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   "Failed to load product",
			Data:    session,
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Data:    session,
	})
}

// GetSession handles GET /api/detail/sessions/{sessionID}
func (h *DetailHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	view, err := h.getSessionHandler.Handle(r.Context(), query.GetSessionQuery{
		SessionID: vars["sessionID"],
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// UpdateSelection handles PUT /api/detail/sessions/{sessionID}/selection
func (h *DetailHandler) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Color *string `json:"color"`
		Size  *string `json:"size"`
		Image *string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	session, err := h.selectHandler.Handle(r.Context(), command.SelectVariantCommand{
		SessionID: vars["sessionID"],
		Color:     req.Color,
		Size:      req.Size,
		Image:     req.Image,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    session,
	})
}

// StepQuantity handles POST /api/detail/sessions/{sessionID}/quantity/step
func (h *DetailHandler) StepQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	session, err := h.stepHandler.Handle(r.Context(), command.StepQuantityCommand{
		SessionID: vars["sessionID"],
		Delta:     req.Delta,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    session,
	})
}

// SetQuantity handles PUT /api/detail/sessions/{sessionID}/quantity
func (h *DetailHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	session, err := h.setQuantityHandler.Handle(r.Context(), command.SetQuantityCommand{
		SessionID: vars["sessionID"],
		Value:     req.Value,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    session,
	})
}

// AddToCart handles POST /api/detail/sessions/{sessionID}/cart
func (h *DetailHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := h.addToCartHandler.Handle(r.Context(), command.AddToCartCommand{
		SessionID: vars["sessionID"],
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	switch result.Outcome {
	case command.OutcomeInvalid:
		respondJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Error:   result.ValidationError,
			Data:    result,
		})
	case command.OutcomeLoginRequired:
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   result.Notice,
			Data:    result,
		})
	case command.OutcomeFailed:
		respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   result.Notice,
			Data:    result,
		})
	default:
		respondJSON(w, http.StatusCreated, Response{
			Success: true,
			Message: result.Notice,
			Data:    result,
		})
	}
}

// BuyNow handles POST /api/detail/sessions/{sessionID}/checkout
func (h *DetailHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := h.buyNowHandler.Handle(r.Context(), command.BuyNowCommand{
		SessionID: vars["sessionID"],
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if result.Outcome == command.OutcomeLoginRequired {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   result.Notice,
			Data:    result,
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// ListReviews handles GET /api/detail/sessions/{sessionID}/reviews
func (h *DetailHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var rating *int
	if raw := r.URL.Query().Get("rating"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   "Invalid rating filter",
			})
			return
		}
		rating = &v
	}

	reviews, err := h.listReviewsHandler.Handle(r.Context(), query.ListReviewsQuery{
		SessionID: vars["sessionID"],
		Rating:    rating,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"reviews": reviews,
			"total":   len(reviews),
		},
	})
}

func (h *DetailHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Session not found",
		})
	case errors.Is(err, domain.ErrSnapshotNotLoaded):
		respondJSON(w, http.StatusConflict, Response{
			Success: false,
			Error:   "Product not loaded",
		})
	default:
		logger.Error(r.Context()).Err(err).Msg("Request failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Internal server error",
		})
	}
}

func (h *DetailHandler) updateSessionsMetric(r *http.Request) {
	if count, err := h.repo.Count(r.Context()); err == nil {
		h.activeSessions.Set(float64(count))
	}
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
