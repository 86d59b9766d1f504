package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/internal/usecases/analytics"
	"github.com/visibly/ai-visibility-api/pkg/apiErrors"
)

func GetBrand(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		details, err := service.GetBrandDetails(brandID)
		if err != nil {
			logrus.WithError(err).WithField("brand_id", brandID).Error("error fetching brand")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error fetching brand", nil)
			return
		}

		if details == nil {
			apiErrors.WriteError(w, apiErrors.ErrBrandNotFound, "Brand not found", nil)
			return
		}

		writeData(w, http.StatusOK, details)
	}
}

func GetBrandTimeseries(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		days := 0
		if daysParam := r.URL.Query().Get("days"); daysParam != "" {
			parsed, err := strconv.Atoi(daysParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid days parameter", nil)
				return
			}
			days = parsed
		}

		aiSource := r.URL.Query().Get("ai_source")

		series, err := service.GetBrandTimeseries(brandID, days, aiSource)
		if err != nil {
			logrus.WithError(err).WithField("brand_id", brandID).Error("error fetching brand timeseries")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error fetching brand timeseries", nil)
			return
		}

		writeData(w, http.StatusOK, series)
	}
}

func GetBrandPlatforms(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		scores, err := service.GetBrandPlatformScores(brandID)
		if err != nil {
			logrus.WithError(err).WithField("brand_id", brandID).Error("error fetching platform scores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error fetching platform scores", nil)
			return
		}

		writeData(w, http.StatusOK, scores)
	}
}
