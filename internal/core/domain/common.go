package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// CreatedBy is set once at creation and never overwritten; the last-modified
// pair is refreshed on every save.
type AuditFields struct {
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"` // Display name of the creating account
	LastModifiedAt time.Time `json:"lastModifiedAt"`
	LastModifiedBy string    `json:"lastModifiedBy"` // Display name of the last editor
}
