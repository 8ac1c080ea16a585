package auth

// TokenPayload represents the login request body.
type TokenPayload struct {
	Username string `json:"username" validate:"required,min=1,max=25"`
	Password string `json:"password" validate:"required,min=5,max=72"`
}

// RegisterPayload represents the registration request body.
type RegisterPayload struct {
	Username  string `json:"username" mod:"trim" validate:"required,min=1,max=25"`
	Password  string `json:"password" validate:"required,min=5,max=72"`
	FirstName string `json:"firstName" mod:"trim" validate:"required,min=1,max=30"`
	LastName  string `json:"lastName" mod:"trim" validate:"required,min=1,max=30"`
	Email     string `json:"email" mod:"trim,lcase" validate:"required,email,max=60"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
