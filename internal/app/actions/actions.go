/*
Package actions implements the "create" features that are acknowledged but not
kept: new projects, collaborations, posts, sign-ups, bookings and mentor
messages. Each action validates its form, logs the submission under a
reference, and answers with a confirmation notice.
*/
package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"ufresher/internal/app/catalog"
	"ufresher/internal/app/session"
	"ufresher/internal/app/user"
	"ufresher/internal/app/validate"
	"ufresher/internal/pkg/logx"
	"ufresher/internal/pkg/randx"
)

// FormError reports the fields that failed validation.
type FormError struct {
	Fields validate.Errors
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form has %d invalid field(s)", len(e.Fields))
}

// AsFormError extracts a *FormError from err.
func AsFormError(err error) (*FormError, bool) {
	var fe *FormError
	ok := errors.As(err, &fe)
	return fe, ok
}

// Receipt acknowledges a discarded submission.
type Receipt struct {
	Ref    string         `json:"ref"`
	Notice session.Notice `json:"notice"`
}

// Service runs the actions.
type Service struct {
	logger zerolog.Logger
}

func NewService() *Service {
	return &Service{logger: logx.With("actions")}
}

func check(errs validate.Errors) error {
	if errs.Empty() {
		return nil
	}
	return &FormError{Fields: errs}
}

// accept tags the submission with a reference and logs it.
func (s *Service) accept(action string, by *user.User, fields map[string]any, notice session.Notice) (Receipt, error) {
	ref, err := randx.Ref()
	if err != nil {
		return Receipt{}, fmt.Errorf("generate reference: %w", err)
	}

	event := s.logger.Info().Str("action", action).Str("ref", ref).Fields(fields)
	if by != nil {
		event = event.Str("user_id", by.ID)
	}
	event.Msg("Mock submission acknowledged and discarded")

	return Receipt{Ref: ref, Notice: notice}, nil
}

func (s *Service) CreateProject(_ context.Context, by *user.User, f validate.ProjectForm) (Receipt, error) {
	if err := check(f.Validate()); err != nil {
		return Receipt{}, err
	}

	return s.accept("create_project", by, map[string]any{
		"title":       f.Title,
		"skills":      f.Skills,
		"max_members": f.MaxMembers,
		"timeline":    f.Timeline,
	}, session.Notice{
		Level:       "success",
		Title:       "Project Created!",
		Description: "Your project has been created successfully",
	})
}

func (s *Service) CreateCollaboration(_ context.Context, by *user.User, collegeID string, f validate.ProjectForm) (Receipt, error) {
	if _, err := catalog.FindCollege(collegeID); err != nil {
		return Receipt{}, err
	}
	if err := check(f.Validate()); err != nil {
		return Receipt{}, err
	}

	return s.accept("create_collaboration", by, map[string]any{
		"college_id":  collegeID,
		"title":       f.Title,
		"skills":      f.Skills,
		"max_members": f.MaxMembers,
	}, session.Notice{
		Level:       "success",
		Title:       "Collaboration Created!",
		Description: "Your project collaboration has been created",
	})
}

func (s *Service) CreatePost(_ context.Context, by *user.User, collegeID string, f validate.PostForm) (Receipt, error) {
	college, err := catalog.FindCollege(collegeID)
	if err != nil {
		return Receipt{}, err
	}
	if err := check(f.Validate()); err != nil {
		return Receipt{}, err
	}

	return s.accept("create_post", by, map[string]any{
		"college_id": collegeID,
		"length":     len(f.Content),
	}, session.Notice{
		Level:       "success",
		Title:       "Post Published!",
		Description: fmt.Sprintf("Your post is live in the %s community", college.Name),
	})
}

// Signup validates a registration. Only the demo accounts can log in, so the
// request is acknowledged and dropped; the password is never logged.
func (s *Service) Signup(_ context.Context, f validate.SignupForm) (Receipt, error) {
	if err := check(f.Validate()); err != nil {
		return Receipt{}, err
	}

	return s.accept("signup", nil, map[string]any{
		"name":  f.Name,
		"email": f.Email,
		"role":  f.Role,
	}, session.Notice{
		Level:       "success",
		Title:       "Thanks for signing up!",
		Description: "Registration is not open yet. Use a demo account to explore U Fresher.",
	})
}

// BookSession books one of the offered slots with a mentor.
func (s *Service) BookSession(_ context.Context, by *user.User, mentorID string, f validate.BookingForm) (Receipt, error) {
	mentor, err := catalog.FindMentor(mentorID)
	if err != nil {
		return Receipt{}, err
	}

	errs := f.Validate()
	if errs.Empty() && !catalog.IsBookable(f.Date, f.Time) {
		errs["slot"] = "Selected slot is not available"
	}
	if err := check(errs); err != nil {
		return Receipt{}, err
	}

	return s.accept("book_session", by, map[string]any{
		"mentor_id": mentorID,
		"date":      f.Date,
		"time":      f.Time,
		"topic":     f.Topic,
	}, session.Notice{
		Level:       "success",
		Title:       "Session Booked!",
		Description: fmt.Sprintf("Your session with %s is confirmed for %s at %s", mentor.Name, f.Date, f.Time),
	})
}

func (s *Service) MessageMentor(_ context.Context, by *user.User, mentorID string, f validate.MessageForm) (Receipt, error) {
	mentor, err := catalog.FindMentor(mentorID)
	if err != nil {
		return Receipt{}, err
	}
	if err := check(f.Validate()); err != nil {
		return Receipt{}, err
	}

	return s.accept("message_mentor", by, map[string]any{
		"mentor_id": mentorID,
		"length":    len(f.Content),
	}, session.Notice{
		Level:       "success",
		Title:       "Message Sent!",
		Description: fmt.Sprintf("Your message has been sent to %s", mentor.Name),
	})
}
