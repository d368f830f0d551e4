package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id             uuid.UUID
	professionalID uuid.UUID
	clientID       uuid.UUID
	timeSlot       TimeSlot
	price          Money
	status         Status
	idempotencyKey uuid.UUID
	note           Note
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking builds a freshly admitted booking. Admissions always enter the
// store as pending; confirmation and cancellation belong to downstream flows.
func NewBooking(
	professionalID, clientID uuid.UUID,
	slot TimeSlot,
	price Money,
	idempotencyKey uuid.UUID,
	note Note,
) *Booking {
	return &Booking{
		id:             uuid.New(),
		professionalID: professionalID,
		clientID:       clientID,
		timeSlot:       slot,
		price:          price,
		status:         StatusPending,
		idempotencyKey: idempotencyKey,
		note:           note,
	}
}

func ReconstructBooking(
	id, professionalID, clientID uuid.UUID,
	slot TimeSlot,
	price Money,
	status Status,
	idempotencyKey uuid.UUID,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		professionalID: professionalID,
		clientID:       clientID,
		timeSlot:       slot,
		price:          price,
		status:         status,
		idempotencyKey: idempotencyKey,
		note:           note,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (b *Booking) ConflictsWith(other *Booking) bool {
	if b.professionalID != other.professionalID {
		return false
	}
	if !b.status.CountsForOverlap() || !other.status.CountsForOverlap() {
		return false
	}
	return b.timeSlot.Overlaps(other.timeSlot)
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) ProfessionalID() uuid.UUID { return b.professionalID }
func (b *Booking) ClientID() uuid.UUID       { return b.clientID }
func (b *Booking) TimeSlot() TimeSlot        { return b.timeSlot }
func (b *Booking) Price() Money              { return b.price }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) IdempotencyKey() uuid.UUID { return b.idempotencyKey }
func (b *Booking) Note() Note                { return b.note }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
