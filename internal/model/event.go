package model

// EventStatus is the moderation state of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPending   EventStatus = "pending"
	EventStatusApproved  EventStatus = "approved"
	EventStatusSuspended EventStatus = "suspended"
	EventStatusRejected  EventStatus = "rejected"
)

// ValidEventStatus reports whether s is a known moderation state.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventStatusDraft, EventStatusPending, EventStatusApproved,
		EventStatusSuspended, EventStatusRejected:
		return true
	}
	return false
}

// Event is the management view of an event record.
type Event struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	DateTime         string            `json:"dateTime"`
	Category         string            `json:"category"`
	Status           EventStatus       `json:"status"`
	PaymentStatus    *string           `json:"paymentStatus"`
	TicketPrice      float64           `json:"ticketPrice"`
	TicketLink       *string           `json:"ticketLink"`
	Location         Location          `json:"location"`
	Images           []string          `json:"images"`
	Videos           []string          `json:"videos"`
	IsTrialActive    bool              `json:"isTrialActive"`
	TrialEndsAt      *string           `json:"trialEndsAt"`
	SubscriptionPlan *string           `json:"subscriptionPlan"`
	Creator          *EventPlannerInfo `json:"creator"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}

// EventList is the paginated management listing of events.
type EventList struct {
	Events     []Event    `json:"events"`
	Pagination Pagination `json:"pagination"`
}
