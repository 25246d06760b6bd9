package cancel_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	"github.com/cashforcars/CFC-AppointmentService/internal/integrations/journeyservice"
)

type fakeIntentRepo struct {
	records []*domain.BookingIntent
}

func (r *fakeIntentRepo) GetByJourney(_ context.Context, journeyID string) ([]*domain.BookingIntent, error) {
	var out []*domain.BookingIntent
	for _, rec := range r.records {
		if rec.JourneyID == journeyID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeIntentRepo) Delete(_ context.Context, id int64) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubJourneyClient struct {
	journeyErr error
	cancelErr  error
	cancels    int
}

func (s *stubJourneyClient) GetJourney(_ context.Context, id string) (*journeyservice.Journey, error) {
	if s.journeyErr != nil {
		return nil, s.journeyErr
	}
	return &journeyservice.Journey{ID: id}, nil
}

func (s *stubJourneyClient) CancelAppointment(context.Context, string) error {
	if s.cancelErr != nil {
		return s.cancelErr
	}
	s.cancels++
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_CancelsAndRemovesIntents(t *testing.T) {
	repo := &fakeIntentRepo{records: []*domain.BookingIntent{
		{ID: 1, JourneyID: "cj-100", PublicID: "a"},
		{ID: 2, JourneyID: "cj-200", PublicID: "b"},
	}}
	journeys := &stubJourneyClient{}
	uc := NewUseCase(repo, journeys, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{JourneyID: "cj-100"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.IntentsRemoved)
	assert.Equal(t, 1, journeys.cancels)

	// the other journey's intent stays
	require.Len(t, repo.records, 1)
	assert.Equal(t, "cj-200", repo.records[0].JourneyID)
}

func TestExecute_NothingToCancel(t *testing.T) {
	uc := NewUseCase(&fakeIntentRepo{}, &stubJourneyClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{JourneyID: "cj-100"})
	assert.ErrorIs(t, err, ErrNothingToCancel)
}

func TestExecute_UpstreamCancelFailureKeepsIntents(t *testing.T) {
	repo := &fakeIntentRepo{records: []*domain.BookingIntent{
		{ID: 1, JourneyID: "cj-100", PublicID: "a"},
	}}
	uc := NewUseCase(repo, &stubJourneyClient{cancelErr: journeyservice.ErrInternal}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{JourneyID: "cj-100"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Len(t, repo.records, 1)
}

func TestExecute_JourneyNotFound(t *testing.T) {
	uc := NewUseCase(&fakeIntentRepo{}, &stubJourneyClient{journeyErr: journeyservice.ErrJourneyNotFound}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{JourneyID: "cj-missing"})
	assert.ErrorIs(t, err, ErrJourneyNotFound)
}

func TestExecute_MissingJourneyID(t *testing.T) {
	uc := NewUseCase(&fakeIntentRepo{}, &stubJourneyClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
