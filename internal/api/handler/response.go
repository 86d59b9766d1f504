package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/internal/usecases/analytics"
	"github.com/visibly/ai-visibility-api/pkg/apiErrors"
)

func GetResponse(service analytics.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responseID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		response, err := service.GetResponse(responseID)
		if err != nil {
			logrus.WithError(err).WithField("response_id", responseID).Error("error fetching response")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error fetching response", nil)
			return
		}

		if response == nil {
			apiErrors.WriteError(w, apiErrors.ErrResponseNotFound, "Response not found", nil)
			return
		}

		writeData(w, http.StatusOK, response)
	}
}
