package dto

// Form-bound requests. Field limits mirror the database columns; binding tags
// do the structural checks and the handler turns violations into a
// field-to-reason map.

type SignupRequest struct {
	Name            string `form:"name" binding:"required,max=120"`
	Email           string `form:"email" binding:"required,email,max=150"`
	Password        string `form:"password" binding:"required,min=6"`
	PasswordConfirm string `form:"password_confirm" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `form:"email" binding:"required,email,max=150"`
	Password string `form:"password" binding:"required"`
}

type CreateEventRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"omitempty,max=2000"`
	Venue       string `form:"venue" binding:"omitempty,max=200"`
	Date        string `form:"date" binding:"required"`
	Capacity    *int   `form:"capacity" binding:"omitempty,gte=1"`
}

type RegistrationActionRequest struct {
	Action string `form:"action" binding:"required"`
}
