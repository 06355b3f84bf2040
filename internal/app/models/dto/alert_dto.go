package dto

// CreateAlertRequest represents admin broadcast creation data
type CreateAlertRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}
