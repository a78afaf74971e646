package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotFound      = errors.New("contact message not found")
)

// Notifier delivers the two post-submission emails. Both sends are
// advisory: the service never lets a delivery failure surface into the
// submission result.
type Notifier interface {
	SendSubmissionConfirmation(ctx context.Context, msg Message) (string, error)
	SendSubmissionAlert(ctx context.Context, msg Message) (string, error)
}

type Service struct {
	repo      Repository
	location  *time.Location
	notifier  Notifier
	sanitizer *bluemonday.Policy
}

func NewService(repo Repository, location *time.Location, notifier Notifier) *Service {
	return &Service{
		repo:      repo,
		location:  location,
		notifier:  notifier,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Submit persists a validated submission as a pending message. Free-text
// fields are stripped of markup before storage; optional fields that were
// not supplied persist as absent.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (Message, error) {
	now := time.Now().In(s.location)
	msg := Message{
		ID:          primitive.NewObjectID().Hex(),
		Name:        s.clean(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       optional(strings.TrimSpace(req.Phone)),
		ServiceType: s.clean(req.ServiceType),
		EventDate:   optional(strings.TrimSpace(req.EventDate)),
		Message:     s.clean(req.Message),
		HowFoundUs:  optional(s.clean(req.HowFoundUs)),
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return Message{}, err
	}

	return msg, nil
}

func (s *Service) clean(value string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(value))
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func (s *Service) NotifyConfirmation(ctx context.Context, msg Message) error {
	if s.notifier == nil {
		return nil
	}
	if strings.TrimSpace(msg.Email) == "" {
		return nil
	}
	_, err := s.notifier.SendSubmissionConfirmation(ctx, msg)
	return err
}

func (s *Service) NotifyAlert(ctx context.Context, msg Message) error {
	if s.notifier == nil {
		return nil
	}
	_, err := s.notifier.SendSubmissionAlert(ctx, msg)
	return err
}

func (s *Service) ListAdmin(ctx context.Context, filter ListFilter, limit, offset int64) ([]Message, int64, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, 0, ErrInvalidStatus
	}

	items, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) GetAdminByID(ctx context.Context, id string) (Message, error) {
	msg, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Message{}, ErrNotFound
		}
		return Message{}, err
	}
	return msg, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Message, error) {
	id = strings.TrimSpace(id)
	status = strings.ToLower(strings.TrimSpace(status))
	if !IsValidStatus(status) {
		return Message{}, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, time.Now().In(s.location))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Message{}, ErrNotFound
		}
		return Message{}, err
	}
	return updated, nil
}

// Respond stores the operator's reply text, stamps responded_at and moves
// the message to the responded status.
func (s *Service) Respond(ctx context.Context, id string, req RespondRequest) (Message, error) {
	id = strings.TrimSpace(id)
	updated, err := s.repo.SetResponse(ctx, id, strings.TrimSpace(req.Response), strings.TrimSpace(req.Notes), time.Now().In(s.location))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Message{}, ErrNotFound
		}
		return Message{}, err
	}
	return updated, nil
}
