package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	created   []Message
	createErr error
	getErr    error
	stored    map[string]Message
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: make(map[string]Message)}
}

func (f *fakeRepo) Create(ctx context.Context, msg Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, msg)
	f.stored[msg.ID] = msg
	return nil
}

func (f *fakeRepo) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Message, error) {
	items := make([]Message, 0)
	for _, msg := range f.stored {
		if filter.Status == "" || msg.Status == filter.Status {
			items = append(items, msg)
		}
	}
	return items, nil
}

func (f *fakeRepo) Count(ctx context.Context, filter ListFilter) (int64, error) {
	items, _ := f.List(ctx, filter, 0, 0)
	return int64(len(items)), nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (Message, error) {
	if f.getErr != nil {
		return Message{}, f.getErr
	}
	msg, ok := f.stored[id]
	if !ok {
		return Message{}, mongo.ErrNoDocuments
	}
	return msg, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id, status string, now time.Time) (Message, error) {
	msg, ok := f.stored[id]
	if !ok {
		return Message{}, mongo.ErrNoDocuments
	}
	msg.Status = status
	msg.UpdatedAt = now
	f.stored[id] = msg
	return msg, nil
}

func (f *fakeRepo) SetResponse(ctx context.Context, id, response, notes string, now time.Time) (Message, error) {
	msg, ok := f.stored[id]
	if !ok {
		return Message{}, mongo.ErrNoDocuments
	}
	msg.Status = StatusResponded
	msg.Response = &response
	msg.RespondedAt = &now
	if notes != "" {
		msg.Notes = &notes
	}
	msg.UpdatedAt = now
	f.stored[id] = msg
	return msg, nil
}

func TestSubmitStoresPendingMessage(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC, nil)

	msg, err := svc.Submit(context.Background(), SubmitRequest{
		Name:          "Ana",
		Email:         "ana@x.com",
		ServiceType:   "Bodas",
		Message:       "Hola",
		AcceptPrivacy: true,
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, StatusPending, msg.Status)
	assert.Equal(t, "Bodas", msg.ServiceType)
	assert.Nil(t, msg.Phone)
	assert.Nil(t, msg.EventDate)
	assert.Nil(t, msg.HowFoundUs)
	assert.Nil(t, msg.Response)
	assert.Nil(t, msg.RespondedAt)
}

func TestSubmitKeepsOptionalFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC, nil)

	msg, err := svc.Submit(context.Background(), SubmitRequest{
		Name:          "Ana",
		Email:         "ana@x.com",
		Phone:         "+34600111222",
		ServiceType:   "Bodas",
		EventDate:     "2027-06-12",
		Message:       "Hola",
		HowFoundUs:    "Instagram",
		AcceptPrivacy: true,
	})
	require.NoError(t, err)

	require.NotNil(t, msg.Phone)
	assert.Equal(t, "+34600111222", *msg.Phone)
	require.NotNil(t, msg.EventDate)
	assert.Equal(t, "2027-06-12", *msg.EventDate)
	require.NotNil(t, msg.HowFoundUs)
	assert.Equal(t, "Instagram", *msg.HowFoundUs)
}

func TestSubmitStripsMarkup(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC, nil)

	msg, err := svc.Submit(context.Background(), SubmitRequest{
		Name:          "<b>Ana</b>",
		Email:         "ana@x.com",
		ServiceType:   "Bodas",
		Message:       "<img src=x onerror=alert(1)>Hola",
		AcceptPrivacy: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", msg.Name)
	assert.Equal(t, "Hola", msg.Message)
}

func TestSubmitPropagatesStoreError(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("insert failed")
	svc := NewService(repo, time.UTC, nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:          "Ana",
		Email:         "ana@x.com",
		ServiceType:   "Bodas",
		Message:       "Hola",
		AcceptPrivacy: true,
	})
	assert.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestNotifyWithoutNotifierIsNil(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC, nil)
	assert.NoError(t, svc.NotifyConfirmation(context.Background(), Message{Email: "ana@x.com"}))
	assert.NoError(t, svc.NotifyAlert(context.Background(), Message{}))
}

func TestUpdateStatusValidation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC, nil)

	stored, err := svc.Submit(context.Background(), SubmitRequest{
		Name: "Ana", Email: "ana@x.com", ServiceType: "Bodas", Message: "Hola", AcceptPrivacy: true,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), stored.ID, "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := svc.UpdateStatus(context.Background(), stored.ID, "READ ")
	require.NoError(t, err)
	assert.Equal(t, StatusRead, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), "missing", StatusRead)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRespondStampsMessage(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC, nil)

	stored, err := svc.Submit(context.Background(), SubmitRequest{
		Name: "Ana", Email: "ana@x.com", ServiceType: "Bodas", Message: "Hola", AcceptPrivacy: true,
	})
	require.NoError(t, err)

	updated, err := svc.Respond(context.Background(), stored.ID, RespondRequest{Response: "Gracias, te llamamos."})
	require.NoError(t, err)

	assert.Equal(t, StatusResponded, updated.Status)
	require.NotNil(t, updated.Response)
	assert.Equal(t, "Gracias, te llamamos.", *updated.Response)
	assert.NotNil(t, updated.RespondedAt)
}

func TestListAdminRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC, nil)
	_, _, err := svc.ListAdmin(context.Background(), ListFilter{Status: "bogus"}, 20, 0)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
