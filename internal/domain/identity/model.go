package identity

import (
	"time"
)

// User roles. A uid belongs to exactly one of the two.
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// Doctor maps to the doctor table.
type Doctor struct {
	UID       string    `db:"uid" json:"uid"`
	Name      string    `db:"name" json:"name"`
	Email     *string   `db:"email" json:"email,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Patient maps to the patient table. Aadhaar is validated at registration
// and immutable afterwards.
type Patient struct {
	UID       string    `db:"uid" json:"uid"`
	Name      string    `db:"name" json:"name"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Aadhaar   string    `db:"aadhaar" json:"aadhaar"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Profile is the role-tagged view of a user. Exactly one of Doctor or
// Patient is set, matching Role.
type Profile struct {
	Role    string   `json:"role"`
	Doctor  *Doctor  `json:"doctor,omitempty"`
	Patient *Patient `json:"patient,omitempty"`
}
