package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/Elin23/LearnifyCourses/internal/catalog"
)

func newTS(t *testing.T) *httptest.Server {
	t.Helper()

	s := &catalog.Server{Store: catalog.NewStore(), Log: zap.NewNop()}
	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "catalog",
	})
	return httptest.NewServer(h)
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestCourses_ListAndGet(t *testing.T) {
	ts := newTS(t)
	t.Cleanup(ts.Close)

	var list struct {
		Courses []catalog.Course `json:"courses"`
		Total   int              `json:"total"`
	}
	resp := getJSON(t, ts.URL+"/courses", &list)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status=%d", resp.StatusCode)
	}
	if list.Total == 0 || len(list.Courses) == 0 {
		t.Fatalf("empty catalog")
	}

	seenIDs := map[string]bool{}
	seenSlugs := map[string]bool{}
	for _, c := range list.Courses {
		if seenIDs[c.ID] || seenSlugs[c.Slug] {
			t.Fatalf("duplicate id/slug: %s/%s", c.ID, c.Slug)
		}
		seenIDs[c.ID] = true
		seenSlugs[c.Slug] = true
	}

	var c catalog.Course
	resp = getJSON(t, ts.URL+"/courses/html-css-foundations", &c)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status=%d", resp.StatusCode)
	}
	if c.ID != "c-fe-01" {
		t.Fatalf("id=%s want=c-fe-01", c.ID)
	}
}

func TestCourses_NotFound(t *testing.T) {
	ts := newTS(t)
	t.Cleanup(ts.Close)

	resp := getJSON(t, ts.URL+"/courses/no-such-course", &struct{}{})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d want=404", resp.StatusCode)
	}
}

func TestCourses_FilterAndPaginate(t *testing.T) {
	ts := newTS(t)
	t.Cleanup(ts.Close)

	var filtered struct {
		Courses []catalog.Course `json:"courses"`
		Total   int              `json:"total"`
	}
	getJSON(t, ts.URL+"/courses?category=Backend&level=Advanced", &filtered)
	if filtered.Total == 0 {
		t.Fatalf("no advanced backend courses")
	}
	for _, c := range filtered.Courses {
		if c.Category != "Backend" || c.Level != "Advanced" {
			t.Fatalf("filter leak: %s %s/%s", c.ID, c.Category, c.Level)
		}
	}

	var page struct {
		Courses []catalog.Course `json:"courses"`
		Total   int              `json:"total"`
		Page    int              `json:"page"`
		PerPage int              `json:"per_page"`
	}
	getJSON(t, ts.URL+"/courses?page=2&per_page=5", &page)
	if page.Page != 2 || page.PerPage != 5 {
		t.Fatalf("page=%d per_page=%d", page.Page, page.PerPage)
	}
	if len(page.Courses) == 0 || len(page.Courses) > 5 {
		t.Fatalf("slice len=%d", len(page.Courses))
	}

	var far struct {
		Courses []catalog.Course `json:"courses"`
	}
	getJSON(t, ts.URL+"/courses?page=99", &far)
	if len(far.Courses) != 0 {
		t.Fatalf("past-the-end page returned %d courses", len(far.Courses))
	}
}

func TestCourses_Search(t *testing.T) {
	ts := newTS(t)
	t.Cleanup(ts.Close)

	var res struct {
		Courses []catalog.Course `json:"courses"`
	}
	getJSON(t, ts.URL+"/courses?q=react", &res)
	if len(res.Courses) == 0 {
		t.Fatalf("no react matches")
	}
}

func TestCourses_Sessions(t *testing.T) {
	ts := newTS(t)
	t.Cleanup(ts.Close)

	var sessions []catalog.Session
	resp := getJSON(t, ts.URL+"/courses/html-css-foundations/sessions", &sessions)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	// 12 total hours -> 12 one-hour sessions.
	if len(sessions) != 12 {
		t.Fatalf("len=%d want=12", len(sessions))
	}
	if !sessions[0].IsPreview {
		t.Fatalf("first session not a preview")
	}
}
