package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/internal/usecases/analytics"
	"github.com/visibly/ai-visibility-api/pkg/apiErrors"
)

func ListCategories(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.GetCategories()
		if err != nil {
			logrus.WithError(err).Error("error listing categories")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing categories", nil)
			return
		}

		writeData(w, http.StatusOK, categories)
	}
}

func GetCategory(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		category, err := service.GetCategory(categoryID)
		if err != nil {
			logrus.WithError(err).WithField("category_id", categoryID).Error("error fetching category")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error fetching category", nil)
			return
		}

		if category == nil {
			apiErrors.WriteError(w, apiErrors.ErrCategoryNotFound, "Category not found", nil)
			return
		}

		writeData(w, http.StatusOK, category)
	}
}

func ListCategoryBrands(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		brands, err := service.GetCategoryBrands(categoryID)
		if err != nil {
			logrus.WithError(err).WithField("category_id", categoryID).Error("error listing category brands")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing category brands", nil)
			return
		}

		writeData(w, http.StatusOK, brands)
	}
}

func ListCategoryPrompts(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		prompts, err := service.GetCategoryPrompts(categoryID)
		if err != nil {
			logrus.WithError(err).WithField("category_id", categoryID).Error("error listing category prompts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing category prompts", nil)
			return
		}

		writeData(w, http.StatusOK, prompts)
	}
}

func GetCategoryLeaderboard(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		leaderboard, err := service.GetCategoryLeaderboard(r.Context(), categoryID)
		if err != nil {
			logrus.WithError(err).WithField("category_id", categoryID).Error("error fetching leaderboard")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error fetching leaderboard", nil)
			return
		}

		writeData(w, http.StatusOK, leaderboard)
	}
}

func GetCategoryAnalytics(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		categoryAnalytics, err := service.GetCategoryAnalytics(r.Context(), categoryID)
		if err != nil {
			logrus.WithError(err).WithField("category_id", categoryID).Error("error computing category analytics")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error computing category analytics", nil)
			return
		}

		if categoryAnalytics == nil {
			apiErrors.WriteError(w, apiErrors.ErrCategoryNotFound, "Category not found", nil)
			return
		}

		writeData(w, http.StatusOK, categoryAnalytics)
	}
}
