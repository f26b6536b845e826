package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildJobsQuery_Defaults(t *testing.T) {
	sql, args := buildJobsQuery(ListJobsOptions{})

	assert.Empty(t, args)
	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "ORDER BY j.created_at DESC")
	assert.Contains(t, sql, "LEFT JOIN companies c")
	assert.Contains(t, sql, "LEFT JOIN contacts ct")
}

func TestBuildJobsQuery_Search(t *testing.T) {
	sql, args := buildJobsQuery(ListJobsOptions{Query: "  backend  "})

	assert.Equal(t, []any{"%backend%"}, args)
	for _, col := range []string{"j.title", "j.description", "j.note", "c.name", "c.city", "ct.name"} {
		assert.Contains(t, sql, col+" ILIKE $1", "column %s", col)
	}
}

func TestBuildJobsQuery_BlankSearchIgnored(t *testing.T) {
	sql, args := buildJobsQuery(ListJobsOptions{Query: "   "})

	assert.Empty(t, args)
	assert.NotContains(t, sql, "WHERE")
}

func TestBuildJobsQuery_StatusFilters(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{StatusApplied, "WHERE j.applied"},
		{StatusNotApplied, "WHERE NOT j.applied"},
		{StatusAnswered, "WHERE j.answer"},
		{StatusNoAnswer, "WHERE NOT j.answer"},
	}

	for _, tt := range tests {
		sql, args := buildJobsQuery(ListJobsOptions{Status: tt.status})
		assert.Empty(t, args, "status %s", tt.status)
		assert.Contains(t, sql, tt.want, "status %s", tt.status)
	}
}

func TestBuildJobsQuery_UnknownStatusIgnored(t *testing.T) {
	sql, _ := buildJobsQuery(ListJobsOptions{Status: "archived"})
	assert.NotContains(t, sql, "WHERE")
}

func TestBuildJobsQuery_Sort(t *testing.T) {
	sql, _ := buildJobsQuery(ListJobsOptions{Sort: SortTitle})
	assert.Contains(t, sql, "ORDER BY lower(j.title) ASC")

	sql, _ = buildJobsQuery(ListJobsOptions{Sort: SortCompany})
	assert.Contains(t, sql, "ORDER BY lower(c.name) ASC NULLS LAST")

	sql, _ = buildJobsQuery(ListJobsOptions{Sort: "bogus"})
	assert.Contains(t, sql, "ORDER BY j.created_at DESC")
}

func TestBuildJobsQuery_SearchAndStatusCombine(t *testing.T) {
	sql, args := buildJobsQuery(ListJobsOptions{Query: "acme", Status: StatusApplied, Sort: SortCompany})

	assert.Len(t, args, 1)
	assert.Contains(t, sql, " AND j.applied")
	assert.Contains(t, sql, "ORDER BY lower(c.name)")
	// single WHERE clause
	assert.Equal(t, 1, strings.Count(sql, "WHERE"))
}
