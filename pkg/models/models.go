package models

// Domain models matching the database schema in db/migrations.

// ServiceRequest is a single atendimento record: one row per accepted
// submission. Records are only ever created and listed, never updated
// or deleted.
type ServiceRequest struct {
	ID                 int64   `json:"id" db:"id"`
	Name               string  `json:"name" db:"name"`
	Email              string  `json:"email" db:"email"`
	Phone              *string `json:"phone,omitempty" db:"phone"`
	ServiceDescription string  `json:"serviceDescription" db:"service_description"`
	// ServiceDate holds the effective date in YYYY-MM-DD form. The store
	// fills in the current date when the submission omitted one.
	ServiceDate string `json:"serviceDate" db:"service_date"`
}
