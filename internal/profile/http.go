package profile

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Elin23/LearnifyCourses/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) profileGet(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	p, found, err := s.Store.ProfileRead(r.Context(), u.ID)
	if err != nil {
		s.writeStoreError(w, r, err, "profile read failed")
		return
	}
	if !found {
		// First visit: seed from the identity headers so the page is
		// never blank.
		p = ProfileData{Name: u.Email, Email: u.Email}
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

type profilePatch struct {
	Name     *string `json:"name"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Country  *string `json:"country"`
	Website  *string `json:"website"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
	Phone    *string `json:"phone"`
}

func (s *Server) profilePut(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var patch profilePatch
	if err := decodeBody(w, r, &patch); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	cur, found, err := s.Store.ProfileRead(r.Context(), u.ID)
	if err != nil {
		s.writeStoreError(w, r, err, "profile read failed")
		return
	}
	if !found {
		cur = ProfileData{Name: u.Email, Email: u.Email}
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if len(name) < 3 {
			kit.WriteFieldErrors(w, r, map[string]string{"name": "name must be at least 3 characters"})
			return
		}
		cur.Name = name
	}
	if patch.Avatar != nil {
		cur.Avatar = strings.TrimSpace(*patch.Avatar)
	}
	if patch.Bio != nil {
		cur.Bio = strings.TrimSpace(*patch.Bio)
	}
	if patch.Country != nil {
		cur.Country = strings.TrimSpace(*patch.Country)
	}
	if patch.Website != nil {
		cur.Website = strings.TrimSpace(*patch.Website)
	}
	if patch.LinkedIn != nil {
		cur.LinkedIn = strings.TrimSpace(*patch.LinkedIn)
	}
	if patch.GitHub != nil {
		cur.GitHub = strings.TrimSpace(*patch.GitHub)
	}
	if patch.Phone != nil {
		phone := strings.TrimSpace(*patch.Phone)
		if phone != cur.Phone {
			// Changing the number invalidates any prior verification.
			cur.Phone = phone
			cur.PhoneVerified = false
		}
	}

	// Email comes from the auth service, never from this endpoint.
	cur.Email = u.Email

	if err := s.Store.ProfileWrite(r.Context(), u.ID, cur); err != nil {
		s.writeStoreError(w, r, err, "profile write failed")
		return
	}
	kit.WriteJSON(w, http.StatusOK, cur)
}

type verifyConfirmReq struct {
	Code string `json:"code"`
}

func (s *Server) phoneVerifyRequest(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	cur, found, err := s.Store.ProfileRead(r.Context(), u.ID)
	if err != nil {
		s.writeStoreError(w, r, err, "profile read failed")
		return
	}
	if !found || len(strings.TrimSpace(cur.Phone)) < 7 {
		kit.WriteFieldErrors(w, r, map[string]string{"phone": "a valid phone number is required"})
		return
	}

	// No SMS provider is wired up; the code is accepted on confirm.
	kit.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "code_sent"})
}

func (s *Server) phoneVerifyConfirm(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req verifyConfirmReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if len(strings.TrimSpace(req.Code)) < 4 {
		kit.WriteFieldErrors(w, r, map[string]string{"code": "verification code is required"})
		return
	}

	cur, found, err := s.Store.ProfileRead(r.Context(), u.ID)
	if err != nil {
		s.writeStoreError(w, r, err, "profile read failed")
		return
	}
	if !found || len(strings.TrimSpace(cur.Phone)) < 7 {
		kit.WriteFieldErrors(w, r, map[string]string{"phone": "a valid phone number is required"})
		return
	}

	cur.PhoneVerified = true
	if err := s.Store.ProfileWrite(r.Context(), u.ID, cur); err != nil {
		s.writeStoreError(w, r, err, "profile write failed")
		return
	}
	kit.WriteJSON(w, http.StatusOK, cur)
}

func (s *Server) settingsGet(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	st, found, err := s.Store.SettingsRead(r.Context(), u.ID)
	if err != nil {
		s.writeStoreError(w, r, err, "settings read failed")
		return
	}
	if !found {
		st = DefaultSettings()
	}
	kit.WriteJSON(w, http.StatusOK, st)
}

func (s *Server) settingsPut(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var st Settings
	if err := decodeBody(w, r, &st); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if !ValidLevel(st.PreferredLevel) {
		kit.WriteFieldErrors(w, r, map[string]string{"preferred_level": "must be beginner, intermediate or advanced"})
		return
	}

	if err := s.Store.SettingsWrite(r.Context(), u.ID, st); err != nil {
		s.writeStoreError(w, r, err, "settings write failed")
		return
	}
	kit.WriteJSON(w, http.StatusOK, st)
}

type themeResp struct {
	Theme string `json:"theme"`
}

func (s *Server) themeGet(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	theme, found, err := s.Store.ThemeRead(r.Context(), u.ID)
	if err != nil {
		s.writeStoreError(w, r, err, "theme read failed")
		return
	}
	if !found || !ValidTheme(theme) {
		theme = ThemeLight
	}
	kit.WriteJSON(w, http.StatusOK, themeResp{Theme: theme})
}

func (s *Server) themePut(w http.ResponseWriter, r *http.Request) {
	u, ok := kit.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req themeResp
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if !ValidTheme(req.Theme) {
		kit.WriteFieldErrors(w, r, map[string]string{"theme": "must be light or dark"})
		return
	}

	if err := s.Store.ThemeWrite(r.Context(), u.ID, req.Theme); err != nil {
		s.writeStoreError(w, r, err, "theme write failed")
		return
	}
	kit.WriteJSON(w, http.StatusOK, themeResp{Theme: req.Theme})
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	if s.Log != nil {
		s.Log.Error(logMsg, zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
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
