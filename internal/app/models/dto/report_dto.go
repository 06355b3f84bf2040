package dto

// ReportRow is one line of the admin applications report. The field order
// mirrors the CSV column order exactly.
type ReportRow struct {
	ApplicationID   int64  `json:"applicationId"`
	StudentName     string `json:"studentName"`
	RegisterNumber  string `json:"registerNumber"`
	Department      string `json:"department"`
	StartupName     string `json:"startupName"`
	InternshipTitle string `json:"internshipTitle"`
	Status          string `json:"status"`
	AppliedDate     string `json:"appliedDate"`
}

// ReportResponse represents the admin applications report
type ReportResponse struct {
	Rows  []ReportRow `json:"rows"`
	Total int         `json:"total"`
}

// KPIMetric is a summary value with a period-over-period change indicator
type KPIMetric struct {
	Value  int    `json:"value" example:"42"`
	Change string `json:"change" example:"+50%"`
}

// DashboardKPIResponse represents the admin dashboard snapshot
type DashboardKPIResponse struct {
	TotalStartups     KPIMetric `json:"totalStartups"`
	ActiveInternships KPIMetric `json:"activeInternships"`
	TotalApplications KPIMetric `json:"totalApplications"`
	TotalStudents     KPIMetric `json:"totalStudents"`
}
