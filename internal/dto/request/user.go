package request

type CreateUserRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,min=7,max=20"`
	Role        string  `json:"role" validate:"omitempty,oneof=admin user"`
	Password    string  `json:"password" validate:"required,min=6"`
}
