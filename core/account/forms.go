package account

import "github.com/trezcool/masterly/core"

type (
	LoginForm struct {
		Email    string `form:"email" json:"email" validate:"required,email"`
		Password string `form:"password" json:"password" validate:"required"`
		Remember string `form:"remember" json:"remember"`
	}

	SignupForm struct {
		FirstName  string `form:"first_name" json:"first_name" validate:"required"`
		LastName   string `form:"last_name" json:"last_name" validate:"required"`
		Email      string `form:"email" json:"email" validate:"required,email"`
		Password   string `form:"password" json:"password" validate:"required"`
		AgreeTerms string `form:"agree_terms" json:"agree_terms" validate:"required"`
	}

	ForgotPasswordForm struct {
		Email string `form:"email" json:"email" validate:"required,email"`
	}

	ProfileForm struct {
		FirstName string `form:"first_name" json:"first_name" validate:"required"`
		LastName  string `form:"last_name" json:"last_name" validate:"required"`
		Email     string `form:"email" json:"email" validate:"required,email"`
		Phone     string `form:"phone" json:"phone"`
		Bio       string `form:"bio" json:"bio"`
		Location  string `form:"location" json:"location"`
		Website   string `form:"website" json:"website" validate:"omitempty,url"`
	}

	PasswordForm struct {
		Current string `form:"current_password" json:"current_password" validate:"required"`
		New     string `form:"new_password" json:"new_password" validate:"required"`
		Confirm string `form:"confirm_password" json:"confirm_password" validate:"required,eqfield=New"`
	}
)

func (f *LoginForm) Clean() {
	f.Email = core.CleanString(f.Email, true /* lower */)
}

func (f *SignupForm) Clean() {
	f.FirstName = core.CleanString(f.FirstName)
	f.LastName = core.CleanString(f.LastName)
	f.Email = core.CleanString(f.Email, true /* lower */)
}

func (f *ForgotPasswordForm) Clean() {
	f.Email = core.CleanString(f.Email, true /* lower */)
}

func (f *ProfileForm) Clean() {
	f.FirstName = core.CleanString(f.FirstName)
	f.LastName = core.CleanString(f.LastName)
	f.Email = core.CleanString(f.Email, true /* lower */)
	f.Phone = core.CleanString(f.Phone)
	f.Bio = core.CleanString(f.Bio)
	f.Location = core.CleanString(f.Location)
	f.Website = core.CleanString(f.Website)
}

// DefaultProfile is the profile shown to the demo student.
var DefaultProfile = ProfileForm{
	FirstName: "Alex",
	LastName:  "Johnson",
	Email:     "alex.johnson@example.com",
	Phone:     "+1 (555) 123-4567",
	Bio:       "AI enthusiast and lifelong learner. Currently studying machine learning and prompt engineering.",
	Location:  "San Francisco, CA",
	Website:   "https://alexjohnson.dev",
}
