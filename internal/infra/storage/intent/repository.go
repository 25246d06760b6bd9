package intent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	"github.com/cashforcars/CFC-AppointmentService/pkg/psqlbuilder"
)

// Repository stores dispatched booking intents. The table carries a unique
// index over (journey_id, location_id, appointment_date, period) so repeated
// identical dispatches resolve to the original row.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking-intent repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

const intentColumns = `id, public_id, journey_id, location_id, location_name, kind,
appointment_date, period, branch_phone, first_name, last_name, phone, sms_opt_in,
address1, address2, city, state_zip, created_at`

// Create persists a new booking intent and fills in its generated fields
func (r *Repository) Create(ctx context.Context, record *domain.BookingIntent) (*domain.BookingIntent, error) {
	query, args, err := psqlbuilder.Insert("booking_intents").
		Columns(
			"public_id",
			"journey_id",
			"location_id",
			"location_name",
			"kind",
			"appointment_date",
			"period",
			"branch_phone",
			"first_name",
			"last_name",
			"phone",
			"sms_opt_in",
			"address1",
			"address2",
			"city",
			"state_zip",
		).
		Values(
			record.PublicID,
			record.JourneyID,
			record.LocationID,
			record.LocationName,
			record.Kind,
			record.ISODate,
			record.Period,
			record.BranchPhone,
			record.FirstName,
			record.LastName,
			record.Phone,
			record.SMSOptIn,
			record.Address1,
			record.Address2,
			record.City,
			record.StateZip,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	record.CreatedAt = createdAt.Time

	return record, nil
}

// GetByTriple fetches the stored intent for a (journey, location, date,
// period) combination, the idempotency key for slot dispatch
func (r *Repository) GetByTriple(ctx context.Context, journeyID string, locationID int64, isoDate string, period domain.Period) (*domain.BookingIntent, error) {
	query, args, err := psqlbuilder.Select(intentColumns).
		From("booking_intents").
		Where(squirrel.Eq{
			"journey_id":       journeyID,
			"location_id":      locationID,
			"appointment_date": isoDate,
			"period":           period,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTriple - build select query: %v", ErrBuildQuery, err)
	}

	record, err := r.scanIntent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIntentNotFound
		}
		return nil, fmt.Errorf("%w: GetByTriple: %v", ErrScanRow, err)
	}
	return record, nil
}

// GetByJourney lists a journey's stored intents, newest first
func (r *Repository) GetByJourney(ctx context.Context, journeyID string) ([]*domain.BookingIntent, error) {
	query, args, err := psqlbuilder.Select(intentColumns).
		From("booking_intents").
		Where(squirrel.Eq{"journey_id": journeyID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByJourney - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByJourney - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var records []*domain.BookingIntent
	for rows.Next() {
		record, err := r.scanIntent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByJourney: %v", ErrScanRow, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByJourney - iterate rows: %v", ErrExecQuery, err)
	}

	return records, nil
}

// Delete removes an intent by ID. Used to roll back a row whose upstream
// submission failed.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("booking_intents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrIntentNotFound
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanIntent(row rowScanner) (*domain.BookingIntent, error) {
	var record domain.BookingIntent
	var createdAt sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.PublicID,
		&record.JourneyID,
		&record.LocationID,
		&record.LocationName,
		&record.Kind,
		&record.ISODate,
		&record.Period,
		&record.BranchPhone,
		&record.FirstName,
		&record.LastName,
		&record.Phone,
		&record.SMSOptIn,
		&record.Address1,
		&record.Address2,
		&record.City,
		&record.StateZip,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = createdAt.Time

	return &record, nil
}
