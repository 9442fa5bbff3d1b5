package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/example/lingodrill/internal/errors"
	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/repository"
	"github.com/example/lingodrill/internal/services"
)

// Server holds the HTTP handlers' dependencies.
type Server struct {
	Profiles services.ProfileService
	Practice services.PracticeService
	Reviews  services.ReviewService
	Progress repository.WordProgressRepository

	// DB backs the readiness probe only; all data access goes through the
	// services above.
	DB *sql.DB

	SessionSize int
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON reads the request body into v. An empty body is allowed and
// leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.NewBadRequestError("invalid JSON body")
	}
	return nil
}
