package services

// Services defined in this package:
// - AuthService: authentication, registration and token lifecycle
// - InternshipService: catalog retrieval and posting management
// - ApplicationService: application lifecycle from submission to certificate
// - ReportService: admin applications report and CSV export
// - DashboardService: admin KPI snapshot
// - StudentService: student profiles and directory
// - StartupService: startup profiles and directory
// - DomainService: internship domain taxonomy
// - AlertService: admin broadcast alerts
