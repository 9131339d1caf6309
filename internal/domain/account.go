package domain

// AccountCategory is the kind of financial account
type AccountCategory string

const (
	CategoryCash   AccountCategory = "CASH"   // Bank / cash account
	CategoryCredit AccountCategory = "CREDIT" // Credit card account
)

// Account Model
type Account struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                 // Primary key
	UserID    uint            `gorm:"index;not null" json:"user_id"`        // Foreign key to the owning User, set once at creation
	Category  AccountCategory `gorm:"type:varchar(16);not null" json:"category"`
	Title     string          `gorm:"size:50;not null" json:"title"`        // Unique per owner (case-insensitive) among non-deleted accounts
	Balance   float64         `json:"balance"`                              // Set at creation only; CREDIT balance is populated externally
	Bill      *int            `json:"bill,omitempty"`                       // Bill generation day, CREDIT only
	Due       *int            `json:"due,omitempty"`                        // Payment due day, CREDIT only
	Deleted   bool            `gorm:"not null;default:false" json:"-"`      // Soft-delete flag, never cleared
	CreatedAt int64           `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
