package shipment

type Status string

const (
	StatusPending   Status = "Pending"
	StatusInTransit Status = "In Transit"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsCompleted returns true once the shipment has left the active flow
func (s Status) IsCompleted() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusInTransit,
		StatusDelivered,
		StatusCancelled,
	}
}
