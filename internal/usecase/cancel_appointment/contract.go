package cancel_appointment

import (
	"context"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	"github.com/cashforcars/CFC-AppointmentService/internal/integrations/journeyservice"
)

// IntentRepository reads and removes stored booking intents
type IntentRepository interface {
	GetByJourney(ctx context.Context, journeyID string) ([]*domain.BookingIntent, error)
	Delete(ctx context.Context, id int64) error
}

// JourneyServiceClient reads and mutates the customer journey
type JourneyServiceClient interface {
	GetJourney(ctx context.Context, journeyID string) (*journeyservice.Journey, error)
	CancelAppointment(ctx context.Context, journeyID string) error
}

// Logger interface for printf logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
