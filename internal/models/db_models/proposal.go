package db_models

import "github.com/google/uuid"

type Proposal struct {
	BaseModel
	PersonID uuid.UUID `gorm:"index"`
	Title    string
	Abstract string
	Accepted bool
}
