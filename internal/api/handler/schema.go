package handler

// --- Request types (form-encoded bodies) ---

type registerRequest struct {
	Name                 string `form:"name"                  validate:"required,max=255"`
	Email                string `form:"email"                 validate:"required,email,max=255"`
	Password             string `form:"password"              validate:"required,min=8,bcryptmax,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `form:"password_confirmation"`
	RoleName             string `form:"role_name"             validate:"required,max=255"`
}

type loginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type profileUpdateRequest struct {
	Name     string `form:"name"      validate:"required,max=255"`
	RoleName string `form:"role_name" validate:"required,max=255"`
}

type locationRequest struct {
	IP string `form:"ip" validate:"omitempty,ip"`
}

// --- Response payloads (the "data" member of the envelope) ---

// userResponse is the external projection of a user. ID is the opaque code.
type userResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleName string `json:"role_name"`
}

type loginResponse struct {
	userResponse
	Token string `json:"token"`
}
