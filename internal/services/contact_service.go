package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "github.com/axellelanca/portfolio/internal/errors"
	"github.com/axellelanca/portfolio/internal/models"
	"github.com/axellelanca/portfolio/internal/repository"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ContactForm is the contact section form as posted by the page.
type ContactForm struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email,max=254"`
	Subject string `form:"subject" validate:"required,max=200"`
	Message string `form:"message" validate:"required"`
}

// Trimmed returns a copy of the form with surrounding whitespace removed.
func (f ContactForm) Trimmed() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// ContactService validates and stores contact submissions.
type ContactService struct {
	contactRepo repository.ContactRepository
	validate    *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
}

// NewContactService creates a ContactService whose validation errors are keyed
// by form field name.
func NewContactService(contactRepo repository.ContactRepository, logger *zap.Logger) *ContactService {
	v := validator.New()
	// Report errors under the form field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ContactService{
		contactRepo: contactRepo,
		validate:    v,
		logger:      logger.With(zap.String("component", "contact_service")),
		now:         time.Now,
	}
}

// Submit validates the trimmed form and stores it. Invalid input yields a
// *errors.ValidationError and nothing is stored.
func (s *ContactService) Submit(ctx context.Context, form ContactForm) (*models.ContactSubmission, error) {
	clean := form.Trimmed()

	if err := s.validate.Struct(clean); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validate contact form: %w", err)
		}
		verr := &apperrors.ValidationError{Fields: make(map[string]string, len(verrs))}
		for _, fe := range verrs {
			verr.Fields[fe.Field()] = fieldMessage(fe)
		}
		s.logger.Warn("Contact form submission failed", zap.Any("errors", verr.Fields))
		return nil, verr
	}

	submission := &models.ContactSubmission{
		Name:      clean.Name,
		Email:     clean.Email,
		Subject:   clean.Subject,
		Message:   clean.Message,
		Timestamp: s.now(),
	}
	if err := s.contactRepo.CreateSubmission(ctx, submission); err != nil {
		return nil, err
	}

	s.logger.Info("New contact form submission", zap.String("email", submission.Email))
	return submission, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	default:
		return "Enter a valid value."
	}
}

// ListSubmissions returns up to limit submissions, newest first.
func (s *ContactService) ListSubmissions(ctx context.Context, limit int) ([]models.ContactSubmission, error) {
	return s.contactRepo.ListSubmissions(ctx, limit)
}
