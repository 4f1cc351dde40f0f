package admin

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/scut1er/studentportal/core"
	"github.com/scut1er/studentportal/core/portal"
)

var (
	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to user attributes"
)

func init() {
	core.Validate.RegisterStructValidation(userCreateStructValidation, UserCreateForm{})
	core.RegisterCustomTranslation(pwdAttrSimTag, pwdAttrSimText)
}

// Editor forms for the admin tabs. The password field exists only on the
// create form; editing a user never touches credentials.

type UserCreateForm struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=STUDENT TEACHER ADMIN"`
	StudentGroup string `json:"studentGroup" validate:"required_if=Role STUDENT"`
	Department   string `json:"department" validate:"required_if=Role TEACHER"`
}

type UserUpdateForm struct {
	ID           int64  `json:"id" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=STUDENT TEACHER ADMIN"`
	StudentGroup string `json:"studentGroup" validate:"required_if=Role STUDENT"`
	Department   string `json:"department" validate:"required_if=Role TEACHER"`
}

type SubjectCreateForm struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type SubjectUpdateForm struct {
	ID int64 `json:"id" validate:"required"`
	SubjectCreateForm
}

// userCreateStructValidation rejects passwords too similar to the user's own
// attributes.
func userCreateStructValidation(sl validator.StructLevel) {
	form := sl.Current().Interface().(UserCreateForm)

	getRatio := func(pass, usrAttr string) float64 {
		if usrAttr == "" {
			return 0
		}
		return difflib.NewMatcher(strings.Split(pass, ""), strings.Split(usrAttr, "")).QuickRatio()
	}
	if getRatio(form.Password, form.Email) >= pwdMaxSim ||
		getRatio(form.Password, form.FirstName) >= pwdMaxSim ||
		getRatio(form.Password, form.LastName) >= pwdMaxSim {
		sl.ReportError(form.Password, "password", "Password", pwdAttrSimTag, "")
	}
}

func validateForm(form interface{}) error {
	if err := core.Validate.Struct(form); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return nil
}

func (f UserCreateForm) input() portal.UserInput {
	return portal.UserInput{
		Email:        f.Email,
		Password:     f.Password,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Role:         f.Role,
		StudentGroup: f.StudentGroup,
		Department:   f.Department,
	}
}

func (f UserUpdateForm) input() portal.UserInput {
	return portal.UserInput{
		Email:        f.Email,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Role:         f.Role,
		StudentGroup: f.StudentGroup,
		Department:   f.Department,
	}
}

func (f SubjectCreateForm) input() portal.SubjectInput {
	return portal.SubjectInput{Name: f.Name, Description: f.Description}
}
