package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CountsForOverlap reports whether a booking in this status blocks other
// bookings from taking the same window.
func (s Status) CountsForOverlap() bool {
	return s != StatusCancelled
}
