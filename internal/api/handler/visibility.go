package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/internal/usecases/analytics"
	"github.com/visibly/ai-visibility-api/pkg/apiErrors"
)

// GetVisibilityScores returns the stats projection, optionally filtered
// by category and AI source. Without a source the scores are combined
// across platforms.
func GetVisibilityScores(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := r.URL.Query().Get("category_id")
		aiSource := r.URL.Query().Get("ai_source")

		scores, err := service.GetScores(categoryID, aiSource)
		if err != nil {
			logrus.WithError(err).Error("error listing visibility scores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing visibility scores", nil)
			return
		}

		writeData(w, http.StatusOK, scores)
	}
}
