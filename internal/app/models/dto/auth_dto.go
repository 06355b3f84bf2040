package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents a refresh token exchange request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes the submitted refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterStudentRequest represents student self-registration data
type RegisterStudentRequest struct {
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	Name           string  `json:"name" binding:"required"`
	RegisterNumber string  `json:"registerNumber" binding:"required"`
	Department     string  `json:"department" binding:"required"`
	Course         string  `json:"course" binding:"required"`
	Year           int     `json:"year" binding:"required,min=1,max=6"`
	CGPA           float64 `json:"cgpa" binding:"gte=0,lte=10"`
}

// RegisterStartupRequest represents startup self-registration data
type RegisterStartupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	CompanyName string `json:"companyName" binding:"required"`
	FounderName string `json:"founderName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	YearFounded int    `json:"yearFounded"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  interface{}   `json:"user"`
}
