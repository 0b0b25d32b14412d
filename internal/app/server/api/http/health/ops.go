package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Liveness and record counts",
		Description: "Reports that the API is up together with the number of records per storage key.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
