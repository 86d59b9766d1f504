package handler

import (
	"net/http"
	"time"
)

type healthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, healthStatus{
			Status:    "healthy",
			Service:   "ai-visibility-api",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})
}
