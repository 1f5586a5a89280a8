package gorm

import "time"

// StateSnapshot persists the whole engine state as one JSON document per
// row. Loading always takes the newest row; older rows are kept as history.
type StateSnapshot struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Payload   []byte    `gorm:"column:payload;type:jsonb;not null"`
	SavedBy   string    `gorm:"column:saved_by;type:varchar(100)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index"`
}

// TableName specifies the table name for GORM
func (StateSnapshot) TableName() string {
	return "state_snapshots"
}
