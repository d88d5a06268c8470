package models

// CodeEntry adalah satu nilai enumerasi (mis. ORDER_STATUS.OPEN).
// Foreign key selalu menunjuk ke ID, tidak pernah ke code.
type CodeEntry struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CodeType  string `gorm:"type:varchar(50);not null;uniqueIndex:idx_code_type_code" json:"code_type"`
	Code      string `gorm:"type:varchar(50);not null;uniqueIndex:idx_code_type_code" json:"code"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
}

type CodeTranslation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CodeEntryID uint      `gorm:"not null;index" json:"code_entry_id"`
	CodeEntry   CodeEntry `gorm:"foreignKey:CodeEntryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Language    string    `gorm:"type:varchar(10);not null" json:"language"`
	Label       string    `gorm:"type:varchar(255);not null" json:"label"`
}
