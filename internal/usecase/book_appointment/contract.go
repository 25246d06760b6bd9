package book_appointment

import (
	"context"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	"github.com/cashforcars/CFC-AppointmentService/internal/integrations/branchservice"
	"github.com/cashforcars/CFC-AppointmentService/internal/integrations/journeyservice"
)

// IntentRepository stores dispatched booking intents
type IntentRepository interface {
	Create(ctx context.Context, record *domain.BookingIntent) (*domain.BookingIntent, error)
	GetByTriple(ctx context.Context, journeyID string, locationID int64, isoDate string, period domain.Period) (*domain.BookingIntent, error)
	Delete(ctx context.Context, id int64) error
}

// BranchServiceClient fetches sellable-to locations for a journey
type BranchServiceClient interface {
	GetBranchesByVehicle(ctx context.Context, journeyID, zip string) ([]branchservice.Branch, error)
}

// JourneyServiceClient reads and mutates the customer journey
type JourneyServiceClient interface {
	GetJourney(ctx context.Context, journeyID string) (*journeyservice.Journey, error)
	SubmitAppointment(ctx context.Context, journeyID string, submission *journeyservice.AppointmentSubmission) error
}

// Logger interface for printf logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
