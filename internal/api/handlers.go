package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
	"github.com/mwhite7112/woodpantry-recipes/internal/service"
)

const (
	msgServerError     = "failed to fetch recipes due to server error"
	msgUnexpectedError = "an unexpected error occurred"
)

// NewRouter wires all routes. port only feeds the liveness message.
func NewRouter(recipes *service.RecipeService, port string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(instrument)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/test", handleTest(port))
		r.Get("/get-recipes", handleGetRecipes(recipes))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- GET /recipes/test ---

func handleTest(port string) http.HandlerFunc {
	msg := "Recipe API is working on port " + port
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(msg)) //nolint:errcheck
	}
}

// --- GET /recipes/get-recipes?ingredients=...&portions=... ---

func handleGetRecipes(recipes *service.RecipeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		ingredients := q.Get("ingredients")
		portions := q.Get("portions")

		rec, err := recipes.GetRecipes(r.Context(), ingredients, portions)
		if err != nil {
			writeServiceError(w, r, ingredients, err)
			return
		}
		if rec.Empty() {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		jsonOK(w, rec)
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, ingredients string, err error) {
	var invalid *recipe.InvalidIngredientsError
	switch {
	case errors.Is(err, service.ErrNoIngredients):
		slog.Warn("ingredients parameter is empty", "request_id", middleware.GetReqID(r.Context()))
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidPortions):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &invalid):
		jsonError(w, invalid.Message, http.StatusBadRequest)
	case errors.Is(err, recipe.ErrInvalidFormat):
		jsonError(w, msgServerError, http.StatusInternalServerError, err, "ingredients", ingredients)
	default:
		jsonError(w, msgUnexpectedError, http.StatusInternalServerError, err, "ingredients", ingredients)
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// jsonError writes {"error": msg}. An optional cause and slog attributes are
// logged for 5xx responses.
func jsonError(w http.ResponseWriter, msg string, status int, cause ...any) {
	if status >= http.StatusInternalServerError && len(cause) > 0 {
		args := append([]any{"status", status, "error"}, cause...)
		slog.Error(msg, args...)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
