package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginForm(t *testing.T) {
	tests := []struct {
		name string
		form LoginForm
		want Errors
	}{
		{"valid", LoginForm{"fresher@demo.com", "Demo123"}, Errors{}},
		{"missing both", LoginForm{}, Errors{"email": "Email is required", "password": "Password is required"}},
		{"no at sign", LoginForm{"fresher.demo.com", "Demo123"}, Errors{"email": "Email is invalid"}},
		{"no dot after at", LoginForm{"fresher@demo", "Demo123"}, Errors{"email": "Email is invalid"}},
		{"short password", LoginForm{"a@b.co", "12345"}, Errors{"password": "Password must be at least 6 characters"}},
		{"exactly six", LoginForm{"a@b.co", "123456"}, Errors{}},
		{"whitespace email", LoginForm{"   ", "123456"}, Errors{"email": "Email is invalid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.form.Validate())
		})
	}
}

func TestSignupForm(t *testing.T) {
	ok := SignupForm{Name: "Alex", Email: "alex@uni.edu", Password: "secret1", ConfirmPassword: "secret1"}
	assert.True(t, ok.Validate().Empty())

	bad := SignupForm{Email: "alex", Password: "abc", ConfirmPassword: "abd"}
	got := bad.Validate()
	assert.Equal(t, Errors{
		"name":            "Name is required",
		"email":           "Email is invalid",
		"password":        "Password must be at least 6 characters",
		"confirmPassword": "Passwords do not match",
	}, got)
}

func TestCreateForms(t *testing.T) {
	assert.Equal(t, Errors{"title": "Title is required", "description": "Description is required"}, ProjectForm{}.Validate())
	assert.True(t, ProjectForm{Title: "Campus App", Description: "Events"}.Validate().Empty())
	assert.Contains(t, ProjectForm{Title: "x", Description: "y", MaxMembers: -1}.Validate(), "maxMembers")

	assert.Contains(t, PostForm{Content: " "}.Validate(), "content")
	assert.True(t, PostForm{Content: "Hello"}.Validate().Empty())

	assert.Equal(t, Errors{"slot": "Please select date and time"}, BookingForm{Date: "Today"}.Validate())
	assert.Equal(t, Errors{"slot": "Please select date and time"}, BookingForm{Time: "9:00 AM"}.Validate())
	assert.True(t, BookingForm{Date: "Today", Time: "9:00 AM"}.Validate().Empty())

	assert.Contains(t, MessageForm{}.Validate(), "content")
}

func TestFieldSpecificMessages(t *testing.T) {
	assert.Equal(t, Errors{"content": "Post content is required"}, PostForm{Content: "\t"}.Validate())
	assert.Equal(t, Errors{"content": "Message cannot be empty"}, MessageForm{}.Validate())
	assert.Equal(t, Errors{"maxMembers": "Team size cannot be negative"},
		ProjectForm{Title: "x", Description: "y", MaxMembers: -1}.Validate())
	assert.Equal(t, Errors{"role": "Role must be fresher or mentor"},
		SignupForm{Name: "A", Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1", Role: "admin"}.Validate())
	assert.True(t, SignupForm{Name: "A", Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1", Role: "mentor"}.Validate().Empty())
}

func TestRegistrationFailurePanics(t *testing.T) {
	assert.NotPanics(t, func() { must(nil) })
	assert.Panics(t, func() { must(validate.RegisterValidation("", notBlankValidation)) })
}
