package services

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciic/internhub/internal/app/models"
	"github.com/ciic/internhub/internal/app/models/dto"
)

func reportFixture() []*models.Application {
	base := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	return []*models.Application{
		{
			ID: 1, Status: models.StatusApplied, CreatedAt: base,
			Student: &models.Student{
				RegisterNumber: "21CS001", Department: "CSE",
				User: &models.User{Name: "Asha Nair"},
			},
			Internship: &models.Internship{
				Title: "Backend Intern", StartupID: 10,
				Startup: &models.Startup{CompanyName: "Acme Labs"},
			},
		},
		{
			ID: 2, Status: models.StatusSelected, CreatedAt: base.Add(48 * time.Hour),
			Student: &models.Student{
				RegisterNumber: "21EC042", Department: "ECE",
				User: &models.User{Name: "Ravi Kumar"},
			},
			Internship: &models.Internship{
				Title: "ML Research", StartupID: 20,
				Startup: &models.Startup{CompanyName: "DeepForge"},
			},
		},
		{
			ID: 3, Status: models.StatusRejected, CreatedAt: base.Add(96 * time.Hour),
			Student: &models.Student{
				RegisterNumber: "21CS007", Department: "CSE",
				User: &models.User{Name: "Meera Iyer"},
			},
			Internship: &models.Internship{
				Title: "Frontend Intern", StartupID: 10,
				Startup: &models.Startup{CompanyName: "Acme Labs"},
			},
		},
	}
}

func TestBuildReportNoFilter(t *testing.T) {
	rows := BuildReport(reportFixture(), ReportFilter{})

	require.Len(t, rows, 3)
	assert.Equal(t, "Asha Nair", rows[0].StudentName)
	assert.Equal(t, "Acme Labs", rows[0].StartupName)
	assert.Equal(t, "10 Feb 2026", rows[0].AppliedDate)
	assert.Equal(t, "SELECTED", rows[1].Status)
}

func TestBuildReportAndCombinesFilters(t *testing.T) {
	// Department and startup predicates must both hold
	rows := BuildReport(reportFixture(), ReportFilter{Department: "CSE", StartupID: 10})
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ApplicationID)
	assert.Equal(t, int64(3), rows[1].ApplicationID)

	rows = BuildReport(reportFixture(), ReportFilter{Department: "ECE", StartupID: 10})
	assert.Empty(t, rows)
}

func TestBuildReportDateRange(t *testing.T) {
	from := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)

	rows := BuildReport(reportFixture(), ReportFilter{From: &from, To: &to})
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].ApplicationID)
}

func TestBuildReportMissingRelationsFallBackToNA(t *testing.T) {
	applications := []*models.Application{
		{ID: 9, Status: models.StatusApplied, CreatedAt: time.Now()},
	}

	rows := BuildReport(applications, ReportFilter{})
	require.Len(t, rows, 1)
	assert.Equal(t, "N/A", rows[0].StudentName)
	assert.Equal(t, "N/A", rows[0].RegisterNumber)
	assert.Equal(t, "N/A", rows[0].Department)
	assert.Equal(t, "N/A", rows[0].StartupName)
	assert.Equal(t, "N/A", rows[0].InternshipTitle)
}

func TestEncodeReportCSVShape(t *testing.T) {
	rows := BuildReport(reportFixture(), ReportFilter{})

	data, err := EncodeReportCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	// Header plus one line per row, 8 fields each
	require.Len(t, records, len(rows)+1)
	for _, record := range records {
		assert.Len(t, record, 8)
	}
	assert.Equal(t, "Application ID", records[0][0])
	assert.Equal(t, "Applied Date", records[0][7])
}

func TestEncodeReportCSVEscapesCommas(t *testing.T) {
	rows := []dto.ReportRow{
		{
			ApplicationID: 1, StudentName: "Nair, Asha", RegisterNumber: "21CS001",
			Department: "CSE", StartupName: "Acme, Inc.", InternshipTitle: "Backend Intern",
			Status: "APPLIED", AppliedDate: "10 Feb 2026",
		},
	}

	data, err := EncodeReportCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Nair, Asha", records[1][1])
	assert.Equal(t, "Acme, Inc.", records[1][4])
}

func TestReportFilename(t *testing.T) {
	at := time.UnixMilli(1756723200000)
	assert.Equal(t, "CIIC_Report_1756723200000.csv", ReportFilename(at))
}
