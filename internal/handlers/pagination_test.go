package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{name: "defaults", query: "", page: 1, pageSize: DefaultPageSize},
		{name: "explicit", query: "page=3&pageSize=10", page: 3, pageSize: 10},
		{name: "zero page clamps", query: "page=0", page: 1, pageSize: DefaultPageSize},
		{name: "negative page clamps", query: "page=-2", page: 1, pageSize: DefaultPageSize},
		{name: "oversized pageSize clamps", query: "pageSize=9999", page: 1, pageSize: MaxPageSize},
		{name: "garbage values fall back", query: "page=abc&pageSize=xyz", page: 1, pageSize: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := pageParams(testContext(t, tt.query))
			if page != tt.page || pageSize != tt.pageSize {
				t.Errorf("pageParams(%q) = (%d, %d), want (%d, %d)",
					tt.query, page, pageSize, tt.page, tt.pageSize)
			}
		})
	}
}

func TestCreatePaginatedResponse(t *testing.T) {
	c := testContext(t, "page=2&pageSize=10")

	resp := CreatePaginatedResponse(c, []string{"a", "b"}, 25)
	if resp.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", resp.CurrentPage)
	}
	if resp.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", resp.PageSize)
	}
	if resp.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.TotalPages)
	}
	if resp.TotalRows != 25 {
		t.Errorf("TotalRows = %d, want 25", resp.TotalRows)
	}
}

func TestCreatePaginatedResponseEmpty(t *testing.T) {
	c := testContext(t, "")

	resp := CreatePaginatedResponse(c, nil, 0)
	if resp.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", resp.TotalPages)
	}
}
