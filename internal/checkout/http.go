package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"MiniShop/internal/session"
	"MiniShop/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Pipeline *Pipeline
	Log      *zap.Logger
}

func (s *Server) CheckoutHandler() http.HandlerFunc { return s.checkout }
func (s *Server) ContactHandler() http.HandlerFunc  { return s.contact }

type checkoutResp struct {
	Message string  `json:"message"`
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	sid, ok := session.FromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	var customer Customer
	if err := decodeBody(w, r, &customer); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	receipt, err := s.Pipeline.Checkout(r.Context(), sid, customer)
	if err != nil {
		s.writeRejection(w, r, err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, checkoutResp{
		Message: "order placed",
		OrderID: receipt.OrderID,
		Total:   receipt.Total,
	})
}

func (s *Server) contact(w http.ResponseWriter, r *http.Request) {
	var sub ContactSubmission
	if err := decodeBody(w, r, &sub); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	if err := s.Pipeline.SubmitContact(r.Context(), sub); err != nil {
		s.writeRejection(w, r, err)
		return
	}

	kit.WriteMessage(w, "thanks for your message, we will be in touch soon")
}

func (s *Server) writeRejection(w http.ResponseWriter, r *http.Request, err error) {
	var missing MissingFieldError
	switch {
	case errors.Is(err, ErrCartEmpty):
		kit.WriteError(w, r, http.StatusBadRequest, ErrCartEmpty.Error(), nil)
	case errors.As(err, &missing):
		kit.WriteError(w, r, http.StatusBadRequest, missing.Error(), map[string]any{"field": missing.Field})
	default:
		if s.Log != nil {
			s.Log.Error("submission failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}
