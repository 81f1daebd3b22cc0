package cart

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"MiniShop/internal/catalog"
	"MiniShop/internal/session"
	"MiniShop/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Store   *Store
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

func (s *Server) ViewHandler() http.HandlerFunc   { return s.view }
func (s *Server) AddHandler() http.HandlerFunc    { return s.add }
func (s *Server) RemoveHandler() http.HandlerFunc { return s.remove }
func (s *Server) UpdateHandler() http.HandlerFunc { return s.update }
func (s *Server) ClearHandler() http.HandlerFunc  { return s.clear }

type addReq struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type updateReq struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type removeReq struct {
	ProductID int `json:"product_id"`
}

func (s *Server) view(w http.ResponseWriter, r *http.Request) {
	sid, ok := session.FromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, BuildView(s.Store.Lines(sid), s.Catalog))
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	sid, ok := session.FromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	var req addReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	if _, found := s.Catalog.Get(req.ProductID); !found {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"product_id": req.ProductID})
		return
	}

	s.Store.Add(sid, req.ProductID, req.Quantity)
	kit.WriteMessage(w, "product added to cart")
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	sid, ok := session.FromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	var req removeReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	s.Store.Remove(sid, req.ProductID)
	kit.WriteMessage(w, "product removed from cart")
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	sid, ok := session.FromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	var req updateReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	s.Store.SetQuantity(sid, req.ProductID, req.Quantity)
	kit.WriteMessage(w, "cart updated")
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	sid, ok := session.FromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	s.Store.Clear(sid)
	kit.WriteMessage(w, "cart cleared")
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}
