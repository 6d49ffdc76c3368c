package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Elin23/LearnifyCourses/internal/catalog"
)

var (
	ErrCatalogNotFound    = errors.New("catalog course not found")
	ErrCatalogBadStatus   = errors.New("catalog bad status")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// CatalogClient resolves course data from the catalog service. Cart views
// and checkout totals always price against live catalog data rather than
// anything persisted alongside the cart.
type CatalogClient struct {
	BaseURL string
	Client  *http.Client
}

func NewCatalogClient(baseURL string) *CatalogClient {
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	}
	return &CatalogClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 3 * time.Second},
	}
}

// CoursesByID fetches the catalog and indexes it by course id.
func (c *CatalogClient) CoursesByID(ctx context.Context) (map[string]catalog.Course, error) {
	var resp struct {
		Courses []catalog.Course `json:"courses"`
		Total   int              `json:"total"`
	}
	if err := c.getJSON(ctx, c.BaseURL+"/courses?per_page=50", &resp); err != nil {
		return nil, err
	}

	byID := make(map[string]catalog.Course, len(resp.Courses))
	for _, course := range resp.Courses {
		byID[course.ID] = course
	}
	return byID, nil
}

func (c *CatalogClient) GetCourseBySlug(ctx context.Context, slug string) (catalog.Course, error) {
	var course catalog.Course
	if err := c.getJSON(ctx, fmt.Sprintf("%s/courses/%s", c.BaseURL, slug), &course); err != nil {
		return catalog.Course{}, err
	}
	return course, nil
}

func (c *CatalogClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrCatalogUnavailable
		}
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return ErrCatalogUnavailable
		}
		return ErrCatalogUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrCatalogNotFound
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", ErrCatalogBadStatus, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
