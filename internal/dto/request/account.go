package request

// SignupRequest is the body of an admin or user signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
	City     string `json:"city"`
}

// LoginRequest is the body of a login for any role
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest changes a user's contact details. Empty fields keep
// their current value.
type UpdateProfileRequest struct {
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	City   string `json:"city"`
}

// ForgotPasswordRequest starts a password reset
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest completes a password reset
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// CreateDriverRequest is the body of an administrative driver creation
type CreateDriverRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
	Address  string `json:"address"`
	Area     string `json:"area"`
	Code     string `json:"id"`
}

// UpdateDriverRequest changes a driver. Empty fields keep their current value.
type UpdateDriverRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
	Area    string `json:"area"`
	Code    string `json:"id"`
}
