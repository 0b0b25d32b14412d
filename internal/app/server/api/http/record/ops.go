package record

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler[T, P]) operationID(action string) string {
	return string(h.typ) + "-" + action
}

func (h *Handler[T, P]) listOp() huma.Operation {
	return huma.Operation{
		OperationID: h.operationID("list"),
		Method:      http.MethodGet,
		Path:        h.path,
		Summary:     "List " + h.typ.DisplayName() + " records",
		Description: "Returns the records in insertion order, optionally filtered by ?q=.",
		Tags:        []string{string(h.typ)},
		Middlewares: h.middleware,
	}
}

func (h *Handler[T, P]) findOp() huma.Operation {
	return huma.Operation{
		OperationID: h.operationID("find"),
		Method:      http.MethodGet,
		Path:        h.path + "/{id}",
		Summary:     "Get a " + string(h.typ),
		Tags:        []string{string(h.typ)},
		Middlewares: h.middleware,
	}
}

func (h *Handler[T, P]) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   h.operationID("create"),
		Method:        http.MethodPost,
		Path:          h.path,
		Summary:       "Create a " + string(h.typ),
		Tags:          []string{string(h.typ)},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler[T, P]) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: h.operationID("update"),
		Method:      http.MethodPut,
		Path:        h.path + "/{id}",
		Summary:     "Replace a " + string(h.typ),
		Tags:        []string{string(h.typ)},
		Middlewares: h.middleware,
	}
}

func (h *Handler[T, P]) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   h.operationID("delete"),
		Method:        http.MethodDelete,
		Path:          h.path + "/{id}",
		Summary:       "Delete a " + string(h.typ),
		Tags:          []string{string(h.typ)},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
