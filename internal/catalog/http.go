package catalog

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Elin23/LearnifyCourses/pkg/kit"
)

const (
	defaultPerPage = 12
	maxPerPage     = 50
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

type listResp struct {
	Courses []Course `json:"courses"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Store.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/courses", s.list)
	r.Get("/courses/{slug}", s.get)
	r.Get("/courses/{slug}/sessions", s.sessions)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	courses, err := s.Store.ListSortedByID(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list courses failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	q := r.URL.Query()
	courses = filterCourses(courses, q.Get("category"), q.Get("level"), q.Get("q"))

	total := len(courses)
	page, perPage := pageParams(q.Get("page"), q.Get("per_page"))
	courses = slicePage(courses, page, perPage)

	kit.WriteJSON(w, http.StatusOK, listResp{
		Courses: courses,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	c, ok, err := s.Store.GetBySlug(r.Context(), slug)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get course failed", zap.Error(err), zap.String("slug", slug))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "course not found", map[string]any{"slug": slug})
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) sessions(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	c, ok, err := s.Store.GetBySlug(r.Context(), slug)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get course failed", zap.Error(err), zap.String("slug", slug))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "course not found", map[string]any{"slug": slug})
		return
	}

	kit.WriteJSON(w, http.StatusOK, GenerateSessions(c.Meta.TotalHours, DefaultChunkMin))
}

func filterCourses(in []Course, category, level, query string) []Course {
	query = strings.ToLower(strings.TrimSpace(query))

	out := in[:0:0]
	for _, c := range in {
		if category != "" && !strings.EqualFold(c.Category, category) {
			continue
		}
		if level != "" && !strings.EqualFold(c.Level, level) {
			continue
		}
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesQuery(c Course, query string) bool {
	if strings.Contains(strings.ToLower(c.Title), query) {
		return true
	}
	for _, t := range c.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

func pageParams(pageStr, perPageStr string) (page, perPage int) {
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	perPage, _ = strconv.Atoi(perPageStr)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func slicePage(in []Course, page, perPage int) []Course {
	start := (page - 1) * perPage
	if start >= len(in) {
		return []Course{}
	}
	end := start + perPage
	if end > len(in) {
		end = len(in)
	}
	return in[start:end]
}
