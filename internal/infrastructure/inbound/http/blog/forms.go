package blog_http

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
)

var decoder = form.NewDecoder()

// FieldErrors maps a form field name to a user-facing message.
type FieldErrors map[string]string

type RegisterForm struct {
	Username string `form:"username" validate:"required,max=150"`
	Password string `form:"password" validate:"required"`
	Email    string `form:"email" validate:"omitempty,email,max=254"`
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type PasswordForm struct {
	Password string `form:"password" validate:"required"`
}

type PostForm struct {
	Title   string `form:"title" validate:"required,max=200"`
	Content string `form:"content" validate:"required"`
}

type CommentForm struct {
	Content string `form:"content" validate:"required"`
}

// trimmer is implemented by forms whose text fields ignore surrounding
// whitespace. Passwords are kept as typed.
type trimmer interface {
	trim()
}

func (f *RegisterForm) trim() {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
}

func (f *LoginForm) trim() {
	f.Username = strings.TrimSpace(f.Username)
}

func (f *PostForm) trim() {
	f.Title = strings.TrimSpace(f.Title)
	f.Content = strings.TrimSpace(f.Content)
}

func (f *CommentForm) trim() {
	f.Content = strings.TrimSpace(f.Content)
}

// NewValidator returns a validator that reports fields by their form name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// BindForm decodes values into dst by the form tag, trims text fields and
// validates the result. Keys without a matching field are ignored.
func BindForm(v *validator.Validate, values url.Values, dst any) FieldErrors {
	if err := decoder.Decode(dst, values); err != nil {
		return FieldErrors{"__all__": err.Error()}
	}
	if t, ok := dst.(trimmer); ok {
		t.trim()
	}
	return validateForm(v, dst)
}

func validateForm(v *validator.Validate, dst any) FieldErrors {
	err := v.Struct(dst)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return FieldErrors{"__all__": err.Error()}
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "This field is required."
		case "max":
			msg = fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
		case "email":
			msg = "Enter a valid email address."
		default:
			msg = fmt.Sprintf("Invalid value (%s).", fe.Tag())
		}
		if _, seen := fieldErrors[fe.Field()]; !seen {
			fieldErrors[fe.Field()] = msg
		}
	}
	return fieldErrors
}
