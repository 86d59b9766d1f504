package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/visibly/ai-visibility-api/internal/usecases/authenticating"
	"github.com/visibly/ai-visibility-api/pkg/apiErrors"
)

// ListUsers is restricted to administrators.
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser()
		if err != nil {
			logrus.WithError(err).Error("error listing users")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing users", nil)
			return
		}

		for _, user := range users {
			user.PasswordHash = ""
		}

		writeData(w, http.StatusOK, users)
	}
}
