package contact

import "time"

const (
	StatusPending   = "pending"
	StatusRead      = "read"
	StatusResponded = "responded"
	StatusArchived  = "archived"
)

var validStatuses = map[string]struct{}{
	StatusPending:   {},
	StatusRead:      {},
	StatusResponded: {},
	StatusArchived:  {},
}

func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

// Message is the persisted contact record. Optional submission fields are
// pointers so the JSON the site consumes carries explicit nulls, matching
// the stored shape.
type Message struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Email       string     `bson:"email" json:"email"`
	Phone       *string    `bson:"phone,omitempty" json:"phone"`
	ServiceType string     `bson:"service_type" json:"service_type"`
	EventDate   *string    `bson:"event_date,omitempty" json:"event_date"`
	Message     string     `bson:"message" json:"message"`
	HowFoundUs  *string    `bson:"how_found_us,omitempty" json:"how_found_us"`
	Status      string     `bson:"status" json:"status"`
	Response    *string    `bson:"response,omitempty" json:"response"`
	RespondedAt *time.Time `bson:"responded_at,omitempty" json:"responded_at"`
	Notes       *string    `bson:"notes,omitempty" json:"notes"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

type SubmitRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"omitempty,phone"`
	ServiceType   string `json:"serviceType" validate:"required"`
	EventDate     string `json:"eventDate" validate:"omitempty,date"`
	Message       string `json:"message" validate:"required,max=500"`
	HowFoundUs    string `json:"howFoundUs"`
	AcceptPrivacy bool   `json:"acceptPrivacy" validate:"eq=true"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending read responded archived"`
}

type RespondRequest struct {
	Response string `json:"response" validate:"required"`
	Notes    string `json:"notes"`
}

type ListFilter struct {
	Status string
}
