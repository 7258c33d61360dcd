/*
Package validate checks the forms submitted by clients. Every Validate method
returns a map from form field name to a user-facing message; an empty map
means the form is acceptable.
*/
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// custom validation tags
const (
	notBlankTag   = "notblank"
	looseEmailTag = "loose_email"
	slotTag       = "slot"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

// overrides replaces the message of one rule on one form field, keyed by
// "<Form>.<field>.<tag>".
var overrides = map[string]string{
	"PostForm.content.notblank":    "Post content is required",
	"MessageForm.content.notblank": "Message cannot be empty",
	"ProjectForm.maxMembers.gte":   "Team size cannot be negative",
	"SignupForm.role.oneof":        "Role must be fresher or mentor",
}

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	var found bool
	if translator, found = uni.GetTranslator("en"); !found {
		panic("validate: english translator not found")
	}
	must(en_translations.RegisterDefaultTranslations(validate, translator))

	// report JSON field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	must(validate.RegisterValidation(notBlankTag, notBlankValidation))
	must(validate.RegisterValidation(looseEmailTag, looseEmailValidation))
	validate.RegisterStructValidation(bookingSlotValidation, BookingForm{})

	registerMessage("required", func(fe validator.FieldError) string {
		return label(fe) + " is required"
	})
	registerMessage(notBlankTag, func(fe validator.FieldError) string {
		return label(fe) + " is required"
	})
	registerMessage(looseEmailTag, func(fe validator.FieldError) string {
		return label(fe) + " is invalid"
	})
	registerMessage("min", func(fe validator.FieldError) string {
		return fmt.Sprintf("%s must be at least %s characters", label(fe), fe.Param())
	})
	registerMessage("eqfield", func(validator.FieldError) string {
		return "Passwords do not match"
	})
	registerMessage(slotTag, func(validator.FieldError) string {
		return "Please select date and time"
	})
}

// registerMessage installs the English message of tag. The translator's own
// registration step is a no-op because the defaults are already registered.
func registerMessage(tag string, message func(fe validator.FieldError) string) {
	must(validate.RegisterTranslation(tag, translator,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string { return message(fe) },
	))
}

// must stops start-up when a rule or message fails to register.
func must(err error) {
	if err != nil {
		panic("validate: " + err.Error())
	}
}

// label turns a JSON field name into the word used in messages. Casers are
// stateful, so each call gets its own.
func label(fe validator.FieldError) string {
	return cases.Title(language.English).String(fe.Field())
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func looseEmailValidation(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

// bookingSlotValidation reports a missing date or time under a single "slot" field.
func bookingSlotValidation(sl validator.StructLevel) {
	f, ok := sl.Current().Interface().(BookingForm)
	if !ok {
		return
	}
	if strings.TrimSpace(f.Date) == "" || strings.TrimSpace(f.Time) == "" {
		sl.ReportError(f.Date, "slot", "Slot", slotTag, "")
	}
}

// Errors maps form field names to messages.
type Errors map[string]string

// Empty reports whether no field failed.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// check runs the struct rules of form and collects one message per field.
func check(form any) Errors {
	e := Errors{}

	err := validate.Struct(form)
	if err == nil {
		return e
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		e["form"] = err.Error()
		return e
	}

	for _, fe := range fieldErrs {
		if _, seen := e[fe.Field()]; seen {
			continue
		}
		if msg, ok := overrides[overrideKey(fe)]; ok {
			e[fe.Field()] = msg
			continue
		}
		e[fe.Field()] = fe.Translate(translator)
	}
	return e
}

func overrideKey(fe validator.FieldError) string {
	form, _, _ := strings.Cut(fe.Namespace(), ".")
	return form + "." + fe.Field() + "." + fe.Tag()
}

// LoginForm is the body of a login request.
type LoginForm struct {
	Email    string `json:"email" validate:"required,loose_email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (f LoginForm) Validate() Errors {
	return check(f)
}

// SignupForm is the body of a sign-up request.
type SignupForm struct {
	Name            string `json:"name" validate:"notblank"`
	Email           string `json:"email" validate:"required,loose_email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
	Role            string `json:"role,omitempty" validate:"omitempty,oneof=fresher mentor"`
}

func (f SignupForm) Validate() Errors {
	return check(f)
}

// ProjectForm creates a project or a college collaboration.
type ProjectForm struct {
	Title       string   `json:"title" validate:"notblank"`
	Description string   `json:"description" validate:"notblank"`
	Skills      []string `json:"skills,omitempty"`
	MaxMembers  int      `json:"maxMembers,omitempty" validate:"gte=0"`
	Timeline    string   `json:"timeline,omitempty"`
}

func (f ProjectForm) Validate() Errors {
	return check(f)
}

// PostForm is a new post on a college community board.
type PostForm struct {
	Content string `json:"content" validate:"notblank"`
}

func (f PostForm) Validate() Errors {
	return check(f)
}

// BookingForm requests a session with a mentor. A missing date or time is
// reported once, under "slot".
type BookingForm struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Topic string `json:"topic,omitempty"`
}

func (f BookingForm) Validate() Errors {
	return check(f)
}

// MessageForm is a direct message to a mentor.
type MessageForm struct {
	Content string `json:"content" validate:"notblank"`
}

func (f MessageForm) Validate() Errors {
	return check(f)
}
