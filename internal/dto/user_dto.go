package dto

// UpdateUserRequest carries the mutable user fields; empty values are left
// untouched.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Gender   string `json:"gender"`
}
