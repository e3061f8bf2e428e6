package queries

import (
	"net/http"

	"github.com/eskrenkovic/session-management-go/internal/modules/core"
)

type ServiceStatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func HandleServiceStatus(w http.ResponseWriter, r *http.Request) {
	core.WriteOK(w, r, ServiceStatusResponse{
		Status:  "healthy",
		Service: "session-management",
	})
}
