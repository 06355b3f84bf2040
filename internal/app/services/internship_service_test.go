package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciic/internhub/internal/app/models"
)

func catalogFixture() []*models.Internship {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []*models.Internship{
		{
			ID: 1, Title: "Backend Intern", Domain: "WEB", Stipend: 15000,
			CreatedAt: base,
			Startup:   &models.Startup{CompanyName: "Acme Labs"},
		},
		{
			ID: 2, Title: "ML Research", Domain: "AI_ML", Stipend: 0,
			CreatedAt: base.Add(24 * time.Hour),
			Startup:   &models.Startup{CompanyName: "DeepForge"},
		},
		{
			ID: 3, Title: "Frontend Intern", Domain: "WEB", Stipend: 10000,
			CreatedAt: base.Add(48 * time.Hour),
			Startup:   &models.Startup{CompanyName: "Acme Labs"},
		},
	}
}

func TestFilterCatalogByDomain(t *testing.T) {
	internships := catalogFixture()

	filtered := FilterCatalog(internships, CatalogFilter{Domain: "AI_ML"})
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID)

	// The ALL sentinel bypasses the domain predicate
	filtered = FilterCatalog(internships, CatalogFilter{Domain: models.DomainAll})
	assert.Len(t, filtered, 3)

	filtered = FilterCatalog(internships, CatalogFilter{})
	assert.Len(t, filtered, 3)
}

func TestFilterCatalogSearchMatchesTitleOrCompany(t *testing.T) {
	internships := catalogFixture()

	// Case-insensitive substring on title
	filtered := FilterCatalog(internships, CatalogFilter{Search: "backend"})
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)

	// Company name matches too
	filtered = FilterCatalog(internships, CatalogFilter{Search: "acme"})
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(1), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)

	filtered = FilterCatalog(internships, CatalogFilter{Search: "nonexistent"})
	assert.Empty(t, filtered)
}

func TestFilterCatalogCombinesPredicates(t *testing.T) {
	internships := catalogFixture()

	filtered := FilterCatalog(internships, CatalogFilter{Domain: "WEB", Search: "frontend"})
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(3), filtered[0].ID)
}

func TestFilterCatalogPreservesOrder(t *testing.T) {
	internships := catalogFixture()

	filtered := FilterCatalog(internships, CatalogFilter{Domain: "WEB"})
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(1), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)
}

func TestFilterCatalogToleratesMissingStartup(t *testing.T) {
	internships := []*models.Internship{
		{ID: 1, Title: "Orphan Posting", Domain: "WEB"},
	}

	filtered := FilterCatalog(internships, CatalogFilter{Search: "acme"})
	assert.Empty(t, filtered)

	filtered = FilterCatalog(internships, CatalogFilter{Search: "orphan"})
	assert.Len(t, filtered, 1)
}

func TestSortCatalogNewest(t *testing.T) {
	internships := catalogFixture()

	SortCatalog(internships, SortNewest)
	require.Len(t, internships, 3)
	assert.Equal(t, int64(3), internships[0].ID)
	assert.Equal(t, int64(2), internships[1].ID)
	assert.Equal(t, int64(1), internships[2].ID)

	// Sorting twice yields the same order as sorting once
	SortCatalog(internships, SortNewest)
	assert.Equal(t, int64(3), internships[0].ID)
	assert.Equal(t, int64(2), internships[1].ID)
	assert.Equal(t, int64(1), internships[2].ID)
}

func TestSortCatalogHighStipend(t *testing.T) {
	internships := catalogFixture()

	SortCatalog(internships, SortHighStipend)
	require.Len(t, internships, 3)
	assert.Equal(t, int64(15000), internships[0].Stipend)
	assert.Equal(t, int64(10000), internships[1].Stipend)

	// Unpaid postings sort after anything with a stipend
	assert.Equal(t, int64(0), internships[2].Stipend)
}

func TestSortCatalogUnknownKeyLeavesOrder(t *testing.T) {
	internships := catalogFixture()

	SortCatalog(internships, "relevance")
	assert.Equal(t, int64(1), internships[0].ID)
	assert.Equal(t, int64(2), internships[1].ID)
	assert.Equal(t, int64(3), internships[2].ID)
}
