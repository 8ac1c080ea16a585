package users

// CreateUserPayload represents the request body for creating a user. Unlike
// registration, an admin can create other admins.
type CreateUserPayload struct {
	Username  string `json:"username" mod:"trim" validate:"required,min=1,max=25"`
	Password  string `json:"password" validate:"required,min=5,max=72"`
	FirstName string `json:"firstName" mod:"trim" validate:"required,min=1,max=30"`
	LastName  string `json:"lastName" mod:"trim" validate:"required,min=1,max=30"`
	Email     string `json:"email" mod:"trim,lcase" validate:"required,email,max=60"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateUserPayload represents the request body for updating a user.
// Usernames and the admin flag can't be changed.
type UpdateUserPayload struct {
	Password  *string `json:"password" validate:"omitnil,min=5,max=72"`
	FirstName *string `json:"firstName" mod:"trim" validate:"omitnil,min=1,max=30"`
	LastName  *string `json:"lastName" mod:"trim" validate:"omitnil,min=1,max=30"`
	Email     *string `json:"email" mod:"trim,lcase" validate:"omitnil,email,max=60"`
}
