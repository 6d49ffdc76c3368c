package commerce

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Elin23/LearnifyCourses/internal/catalog"
	"github.com/Elin23/LearnifyCourses/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Svc *Service
	Log *zap.Logger
}

type addItemReq struct {
	CourseID string `json:"course_id"`
}

func (s *Server) cartView(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	view, err := s.Svc.CartView(r.Context(), u.ID)
	if err != nil {
		s.writeCatalogError(w, r, err, "cart view failed")
		return
	}
	kit.WriteJSON(w, http.StatusOK, view)
}

func (s *Server) cartAdd(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req addItemReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.CourseID == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "course_id required", nil)
		return
	}

	if err := s.Svc.AddToCart(r.Context(), u.ID, req.CourseID); err != nil {
		if errors.Is(err, ErrUnknownCourse) {
			kit.WriteError(w, r, http.StatusBadRequest, "invalid course_id", map[string]any{"course_id": req.CourseID})
			return
		}
		s.writeCatalogError(w, r, err, "cart add failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) cartRemove(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.Svc.RemoveFromCart(r.Context(), u.ID, id); err != nil {
		s.writeCatalogError(w, r, err, "cart remove failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) cartClear(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	if err := s.Svc.ClearCart(r.Context(), u.ID); err != nil {
		s.writeCatalogError(w, r, err, "cart clear failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var form CheckoutForm
	if err := decodeBody(w, r, &form); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	result, err := s.Svc.Checkout(r.Context(), u.ID, form)
	switch {
	case errors.Is(err, ErrEmptyCart):
		kit.WriteError(w, r, http.StatusConflict, "cart is empty", nil)
		return
	case err != nil:
		s.writeCatalogError(w, r, err, "checkout failed")
		return
	}

	if len(result.FieldErrors) > 0 {
		kit.WriteFieldErrors(w, r, result.FieldErrors)
		return
	}
	kit.WriteJSON(w, http.StatusOK, result)
}

func (s *Server) myCourses(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	ids, err := s.Svc.PurchasedIDs(r.Context(), u.ID)
	if err != nil {
		s.writeCatalogError(w, r, err, "purchases read failed")
		return
	}

	byID, err := s.Svc.Catalog.CoursesByID(r.Context())
	if err != nil {
		s.writeCatalogError(w, r, err, "catalog fetch failed")
		return
	}

	courses := make([]catalog.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			courses = append(courses, c)
		}
	}
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"course_ids": ids,
		"courses":    courses,
	})
}

type accessResp struct {
	Decision AccessDecision   `json:"decision"`
	Redirect string           `json:"redirect,omitempty"`
	Session  *catalog.Session `json:"session,omitempty"`
}

// sessionAccess decides whether the requested synthetic session is visible
// to the caller. Preview sessions are open even without user headers, so
// this route sits outside the identity requirement.
func (s *Server) sessionAccess(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 1 {
		kit.WriteError(w, r, http.StatusNotFound, "session not found", nil)
		return
	}

	course, err := s.Svc.Catalog.GetCourseBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, ErrCatalogNotFound) {
			kit.WriteError(w, r, http.StatusNotFound, "course not found", map[string]any{"slug": slug})
			return
		}
		s.writeCatalogError(w, r, err, "catalog fetch failed")
		return
	}

	session, ok := catalog.SessionAt(course, index)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "session not found", map[string]any{"index": index})
		return
	}

	u, authed := kit.UserFromContext(r.Context())

	purchased := false
	if authed {
		purchased, err = s.Svc.IsPurchased(r.Context(), u.ID, course.ID)
		if err != nil {
			s.writeCatalogError(w, r, err, "purchases read failed")
			return
		}
	}

	decision := DecideAccess(session, authed, purchased)
	resp := accessResp{Decision: decision, Redirect: RedirectFor(decision)}

	if decision == AccessAllowed {
		resp.Session = &session
		kit.WriteJSON(w, http.StatusOK, resp)
		return
	}
	kit.WriteJSON(w, http.StatusForbidden, resp)
}

func (s *Server) writeCatalogError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	if s.Log != nil {
		s.Log.Error(logMsg, zap.Error(err))
	}

	switch {
	case errors.Is(err, ErrCatalogUnavailable):
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog unavailable", nil)
	case errors.Is(err, ErrCatalogBadStatus):
		kit.WriteError(w, r, http.StatusBadGateway, "catalog error", nil)
	default:
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra data after json object")
	}
	return nil
}
