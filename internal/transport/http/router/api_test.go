package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-gin-user-table/internal/core/config"
	"go-gin-user-table/internal/domain"
	"go-gin-user-table/internal/repo"
	"go-gin-user-table/internal/transport/http/router"
)

type envelope[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

type viewDTO struct {
	VisibleRows []domain.User `json:"visibleRows"`
	StartIndex  int           `json:"startIndex"`
	EndIndex    int           `json:"endIndex"`
	TotalCount  int           `json:"totalCount"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	SearchTerm  string        `json:"searchTerm"`
	Sort        struct {
		Field     string `json:"field"`
		Direction string `json:"direction"`
	} `json:"sortConfiguration"`
}

var failing = domain.SourceFunc(func(context.Context) ([]domain.User, error) {
	return nil, errors.New("fetch failed")
})

func newEngine(src domain.UserSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.NewAPIEngine(zap.NewNop(), config.HTTP{MaxInFlight: 10}, 5, src)
}

func do[T any](t *testing.T, e *gin.Engine, method, target string) envelope[T] {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var out envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func names(us []domain.User) string {
	s := make([]string, 0, len(us))
	for _, u := range us {
		s = append(s, u.Username)
	}
	return strings.Join(s, ",")
}

func TestUserTable(t *testing.T) {
	e := newEngine(repo.NewStaticSource(repo.SampleUsers()))

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantRows  string
		wantTotal int
		wantPages int
		wantPage  int
	}{
		{
			name:      "Default first page",
			query:     "",
			wantRows:  "john_doe,jane_smith,robert_johnson,sarah_williams,michael_brown",
			wantTotal: 10, wantPages: 2,
		},
		{
			name:      "Search",
			query:     "?q=jane",
			wantRows:  "jane_smith",
			wantTotal: 1, wantPages: 1,
		},
		{
			name:      "Sort by username",
			query:     "?sort=username",
			wantRows:  "david_miller,emily_davis,emma_taylor,james_wilson,jane_smith",
			wantTotal: 10, wantPages: 2,
		},
		{
			name:      "Sort by id desc second page",
			query:     "?sort=id&dir=desc&page=2",
			wantRows:  "michael_brown,sarah_williams,robert_johnson,jane_smith,john_doe",
			wantTotal: 10, wantPages: 2,
		},
		{
			name:      "Page past the end",
			query:     "?q=jane&page=3",
			wantRows:  "",
			wantTotal: 1, wantPages: 1,
		},
		{
			name:      "Zero page reads as first",
			query:     "?page=0",
			wantRows:  "john_doe,jane_smith,robert_johnson,sarah_williams,michael_brown",
			wantTotal: 10, wantPages: 2, wantPage: 1,
		},
		{
			name:      "Negative page reads as first",
			query:     "?page=-4",
			wantRows:  "john_doe,jane_smith,robert_johnson,sarah_williams,michael_brown",
			wantTotal: 10, wantPages: 2, wantPage: 1,
		},
		{
			name:      "Max int page",
			query:     "?page=9223372036854775807",
			wantRows:  "",
			wantTotal: 10, wantPages: 2, wantPage: 9223372036854775807,
		},
		{
			name:     "Unknown sort field",
			query:    "?sort=password",
			wantCode: 400,
		},
		{
			name:     "Unknown direction",
			query:    "?sort=id&dir=up",
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := do[viewDTO](t, e, http.MethodGet, "/api/v1/users/table"+tt.query)
			require.Equal(t, tt.wantCode, out.Code, out.Msg)
			if tt.wantCode != 0 {
				return
			}
			assert.Equal(t, tt.wantRows, names(out.Data.VisibleRows))
			assert.Equal(t, tt.wantTotal, out.Data.TotalCount)
			assert.Equal(t, tt.wantPages, out.Data.TotalPages)
			if tt.wantPage != 0 {
				assert.Equal(t, tt.wantPage, out.Data.CurrentPage)
				assert.LessOrEqual(t, out.Data.StartIndex, tt.wantTotal+1)
			}
		})
	}
}

func TestUserTable_ViewShape(t *testing.T) {
	e := newEngine(repo.NewStaticSource(repo.SampleUsers()))
	out := do[viewDTO](t, e, http.MethodGet, "/api/v1/users/table?sort=isAdmin&dir=desc&page=2")

	require.Equal(t, 0, out.Code)
	assert.Equal(t, "isAdmin", out.Data.Sort.Field)
	assert.Equal(t, "desc", out.Data.Sort.Direction)
	assert.Equal(t, 2, out.Data.CurrentPage)
	assert.Equal(t, 6, out.Data.StartIndex)
	assert.Equal(t, 10, out.Data.EndIndex)
	assert.Equal(t, "jane_smith,sarah_williams,emily_davis,lisa_anderson,emma_taylor", names(out.Data.VisibleRows))
}

func TestUserTable_LoadFailureRendersEmpty(t *testing.T) {
	e := newEngine(failing)
	out := do[viewDTO](t, e, http.MethodGet, "/api/v1/users/table?q=jane")

	require.Equal(t, 0, out.Code)
	assert.NotNil(t, out.Data.VisibleRows)
	assert.Empty(t, out.Data.VisibleRows)
	assert.Equal(t, 0, out.Data.TotalCount)
	assert.Equal(t, 0, out.Data.TotalPages)
}

func TestUsersList(t *testing.T) {
	out := do[[]domain.User](t, newEngine(repo.NewStaticSource(repo.SampleUsers())), http.MethodPost, "/api/v1/users/list")
	require.Equal(t, 0, out.Code)
	assert.Equal(t, repo.SampleUsers(), out.Data)

	empty := do[[]domain.User](t, newEngine(repo.NewStaticSource(nil)), http.MethodPost, "/api/v1/users/list")
	require.Equal(t, 0, empty.Code)
	assert.NotNil(t, empty.Data)
	assert.Empty(t, empty.Data)

	failed := do[json.RawMessage](t, newEngine(failing), http.MethodPost, "/api/v1/users/list")
	assert.Equal(t, 500, failed.Code)
	assert.Equal(t, "list users failed", failed.Msg)
}

// HTTPSource talking to the list endpoint closes the loop between the two sides.
func TestHTTPSourceAgainstListEndpoint(t *testing.T) {
	srv := httptest.NewServer(newEngine(repo.NewStaticSource(repo.SampleUsers())))
	defer srv.Close()

	got, err := repo.NewHTTPSource(srv.URL+"/api/v1/users/list", 0).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.SampleUsers(), got)
}

func TestHealthAndMetrics(t *testing.T) {
	e := newEngine(repo.NewStaticSource(repo.SampleUsers()))

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	_ = do[viewDTO](t, e, http.MethodGet, "/api/v1/users/table")

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_table_views_total")
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
