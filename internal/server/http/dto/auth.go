package dto

// AuthRequest describes register and login payloads.
type AuthRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// AuthResponse carries the issued token along with the account.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MessageResponse is used for plain confirmations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}
