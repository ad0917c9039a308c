package handlers

import (
	"encoding/json"
	"net/http"

	"noodle-pos/internal/common/logger"
	"noodle-pos/internal/microservices/order/service"
)

type Handler struct {
	Orders *OrderHandler
}

func New(s *service.Service, lg *logger.Logger) *Handler {
	return &Handler{
		Orders: NewOrderHandler(s.Orders, lg),
	}
}

// writeJSON sends v as JSON with the given status.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProblem sends a simplified problem+json error body.
func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	writeJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}
