package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/tripline/backend/internal/domain"
	"github.com/tripline/backend/internal/repo"
)

// ClientService implements business logic for Client operations.
type ClientService struct {
	clients  repo.ClientRepo
	validate *validator.Validate
}

// NewClientService constructs a ClientService backed by the provided ClientRepo.
func NewClientService(clients repo.ClientRepo) *ClientService {
	return &ClientService{clients: clients, validate: newValidator()}
}

// Create validates and persists a new client, returning its generated ID.
// Returns domain.ErrValidation naming every blank field.
func (s *ClientService) Create(ctx context.Context, client domain.Client) (int, error) {
	if err := s.validateClient(client); err != nil {
		return 0, fmt.Errorf("service.ClientService.Create: %w", err)
	}
	id, err := s.clients.Create(ctx, client)
	if err != nil {
		return 0, fmt.Errorf("service.ClientService.Create: %w", err)
	}
	return id, nil
}

// validateClient runs the struct tags on domain.Client and folds any field
// errors into a single domain.ErrValidation.
func (s *ClientService) validateClient(client domain.Client) error {
	err := s.validate.Struct(client)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	verb := "is"
	if len(fields) > 1 {
		verb = "are"
	}
	return fmt.Errorf("%w: %s %s required", domain.ErrValidation, strings.Join(fields, ", "), verb)
}

// newValidator returns a validator that reports fields by their JSON name and
// understands the "notblank" tag (rejects empty and whitespace-only strings).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// NotBlank only fails registration if the tag name is already taken.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}
