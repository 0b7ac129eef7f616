package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@coursehub.dev"`
	Password string `json:"password" binding:"required,min=8" example:"Student123!"`
}

// TokenResponse is the bearer credential handed to a logged-in account
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"`
}
