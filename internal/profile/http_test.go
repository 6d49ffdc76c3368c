package profile

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func newTS(t *testing.T) (*httptest.Server, *MemStore) {
	t.Helper()

	store := NewMemStore()
	srv := &Server{Store: store, Log: zap.NewNop()}
	h := NewHandler(srv, HTTPDeps{
		Log:      zap.NewNop(),
		Service:  "profile",
		Registry: prometheus.NewRegistry(),
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts, store
}

func do(t *testing.T, ts *httptest.Server, method, path, userID string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
		req.Header.Set("X-User-Email", userID+"@example.com")
		req.Header.Set("X-User-Role", "user")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestProfileRequiresUser(t *testing.T) {
	ts, _ := newTS(t)

	resp := do(t, ts, http.MethodGet, "/profile", "", nil)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestProfileDefaultsAndPatch(t *testing.T) {
	ts, _ := newTS(t)

	resp := do(t, ts, http.MethodGet, "/profile", "u1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", resp.StatusCode)
	}
	var p ProfileData
	decode(t, resp, &p)
	if p.Email != "u1@example.com" {
		t.Fatalf("default email = %q", p.Email)
	}

	resp = do(t, ts, http.MethodPut, "/profile", "u1", map[string]string{
		"name": "Lina Haddad",
		"bio":  "frontend dev",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("put status = %d, want 200", resp.StatusCode)
	}
	decode(t, resp, &p)
	if p.Name != "Lina Haddad" || p.Bio != "frontend dev" {
		t.Fatalf("patched profile = %+v", p)
	}

	// Fields not named in the patch survive the next update.
	resp = do(t, ts, http.MethodPut, "/profile", "u1", map[string]string{"country": "JO"})
	decode(t, resp, &p)
	if p.Name != "Lina Haddad" || p.Bio != "frontend dev" || p.Country != "JO" {
		t.Fatalf("merge lost fields: %+v", p)
	}
}

func TestProfileNameTooShort(t *testing.T) {
	ts, _ := newTS(t)

	resp := do(t, ts, http.MethodPut, "/profile", "u1", map[string]string{"name": "ab"})
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestPhoneVerifyFlow(t *testing.T) {
	ts, _ := newTS(t)

	// No phone yet: request is rejected.
	resp := do(t, ts, http.MethodPost, "/profile/phone/verify", "u1", nil)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("verify without phone = %d, want 422", resp.StatusCode)
	}

	resp = do(t, ts, http.MethodPut, "/profile", "u1", map[string]string{"phone": "+962790000001"})
	_ = resp.Body.Close()

	resp = do(t, ts, http.MethodPost, "/profile/phone/verify", "u1", nil)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("verify = %d, want 202", resp.StatusCode)
	}

	resp = do(t, ts, http.MethodPost, "/profile/phone/confirm", "u1", map[string]string{"code": "123456"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("confirm = %d, want 200", resp.StatusCode)
	}
	var p ProfileData
	decode(t, resp, &p)
	if !p.PhoneVerified {
		t.Fatal("phone not marked verified")
	}

	// Changing the number drops the verified flag.
	resp = do(t, ts, http.MethodPut, "/profile", "u1", map[string]string{"phone": "+962790000002"})
	decode(t, resp, &p)
	if p.PhoneVerified {
		t.Fatal("verified flag survived a phone change")
	}
}

func TestPhoneConfirmShortCode(t *testing.T) {
	ts, _ := newTS(t)

	resp := do(t, ts, http.MethodPut, "/profile", "u1", map[string]string{"phone": "+962790000001"})
	_ = resp.Body.Close()

	resp = do(t, ts, http.MethodPost, "/profile/phone/confirm", "u1", map[string]string{"code": "12"})
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("short code = %d, want 422", resp.StatusCode)
	}
}

func TestSettingsDefaultsAndSave(t *testing.T) {
	ts, _ := newTS(t)

	resp := do(t, ts, http.MethodGet, "/settings", "u1", nil)
	var st Settings
	decode(t, resp, &st)
	if st != DefaultSettings() {
		t.Fatalf("defaults = %+v", st)
	}

	st.AutoplayNext = false
	st.PreferredLevel = "advanced"
	resp = do(t, ts, http.MethodPut, "/settings", "u1", st)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("put status = %d, want 200", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp = do(t, ts, http.MethodGet, "/settings", "u1", nil)
	var got Settings
	decode(t, resp, &got)
	if got != st {
		t.Fatalf("settings = %+v, want %+v", got, st)
	}
}

func TestSettingsBadLevel(t *testing.T) {
	ts, _ := newTS(t)

	st := DefaultSettings()
	st.PreferredLevel = "wizard"
	resp := do(t, ts, http.MethodPut, "/settings", "u1", st)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestThemeDefaultsAndToggle(t *testing.T) {
	ts, store := newTS(t)

	resp := do(t, ts, http.MethodGet, "/theme", "u1", nil)
	var th themeResp
	decode(t, resp, &th)
	if th.Theme != ThemeLight {
		t.Fatalf("default theme = %q", th.Theme)
	}

	resp = do(t, ts, http.MethodPut, "/theme", "u1", themeResp{Theme: ThemeDark})
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("put status = %d", resp.StatusCode)
	}

	resp = do(t, ts, http.MethodGet, "/theme", "u1", nil)
	decode(t, resp, &th)
	if th.Theme != ThemeDark {
		t.Fatalf("theme = %q, want dark", th.Theme)
	}

	// Corrupt stored value falls back to light.
	store.SeedRaw("theme:u1", []byte(`"neon"`))
	resp = do(t, ts, http.MethodGet, "/theme", "u1", nil)
	decode(t, resp, &th)
	if th.Theme != ThemeLight {
		t.Fatalf("theme after corrupt blob = %q, want light", th.Theme)
	}
}

func TestThemeRejectsUnknown(t *testing.T) {
	ts, _ := newTS(t)

	resp := do(t, ts, http.MethodPut, "/theme", "u1", themeResp{Theme: "sepia"})
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestCorruptProfileBlobReadsAsAbsent(t *testing.T) {
	ts, store := newTS(t)

	store.SeedRaw("profile:u1", []byte(`{not json`))
	resp := do(t, ts, http.MethodGet, "/profile", "u1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var p ProfileData
	decode(t, resp, &p)
	if p.Email != "u1@example.com" {
		t.Fatalf("corrupt blob did not fall back to defaults: %+v", p)
	}
}
