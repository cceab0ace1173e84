package models

import "time"

// AuditFields holds standard audit columns shared by persisted entities.
type AuditFields struct {
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	CreatedBy      string    `db:"created_by" json:"createdBy"`
	LastModifiedAt time.Time `db:"last_modified_at" json:"lastModifiedAt"`
	LastModifiedBy string    `db:"last_modified_by" json:"lastModifiedBy"`
}
