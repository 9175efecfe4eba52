package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	blogRepo "lightfield/database/repository/blog"
	"lightfield/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlogRepo struct {
	monthViews    []blogRepo.MonthViews
	monthViewsErr error
}

func (f *fakeBlogRepo) List(blogRepo.ListFilter) ([]models.BlogPost, int64, error) { return nil, 0, nil }

func (f *fakeBlogRepo) GetBySlug(string) (*models.BlogPost, error) { return nil, nil }

func (f *fakeBlogRepo) GetByID(string) (*models.BlogPost, error) { return nil, nil }

func (f *fakeBlogRepo) Create(*models.BlogPost) error { return nil }

func (f *fakeBlogRepo) Update(*models.BlogPost) error { return nil }

func (f *fakeBlogRepo) Delete(string) error { return nil }

func (f *fakeBlogRepo) Reorder([]models.ReorderItem) error { return nil }

func (f *fakeBlogRepo) IncrementViewCount(string) error { return nil }

func (f *fakeBlogRepo) SetAIOverview(string, string) error { return nil }

func (f *fakeBlogRepo) CountByCategory() (map[string]int64, error) { return nil, nil }

func (f *fakeBlogRepo) CountByMonth(int) ([]blogRepo.MonthCount, error) { return nil, nil }

func (f *fakeBlogRepo) ViewsByMonth(int) ([]blogRepo.MonthViews, error) {
	return f.monthViews, f.monthViewsErr
}

func (f *fakeBlogRepo) TotalViews() (int64, error) { return 0, nil }

func (f *fakeBlogRepo) MissingAIOverviewIDs() ([]string, error) { return nil, nil }

func serveBlogViewsChart(t *testing.T) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/charts/blog-views", BlogViewsChart)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/charts/blog-views", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestBlogViewsChart(t *testing.T) {
	BlogRepo = &fakeBlogRepo{monthViews: []blogRepo.MonthViews{
		{Month: "2026-07", Views: 120},
		{Month: "2026-08", Views: 245},
	}}

	w := serveBlogViewsChart(t)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Results []blogRepo.MonthViews `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Results, 2)
	assert.Equal(t, "2026-07", body.Results[0].Month)
	assert.Equal(t, int64(120), body.Results[0].Views)
	assert.Equal(t, int64(245), body.Results[1].Views)
}

func TestBlogViewsChartEmpty(t *testing.T) {
	BlogRepo = &fakeBlogRepo{}

	w := serveBlogViewsChart(t)
	require.Equal(t, http.StatusOK, w.Code)
	// No rows serializes as an empty array, not null.
	assert.JSONEq(t, `{"results": []}`, w.Body.String())
}

func TestBlogViewsChartRepoError(t *testing.T) {
	BlogRepo = &fakeBlogRepo{monthViewsErr: errors.New("aggregation failed")}

	w := serveBlogViewsChart(t)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
