package request

type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=7,max=15"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=200"`
	Role     string  `json:"role" validate:"required,oneof=customer admin"`
}

type UpdateUserRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=7,max=15"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=200"`
	Role    *string `json:"role,omitempty" validate:"omitempty,oneof=customer admin"`
	// Password is only changed when a new one is supplied.
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}
