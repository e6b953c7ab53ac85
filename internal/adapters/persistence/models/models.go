package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application status values. Transitions are one-directional:
// Pending -> Approved | Rejected, set once by admin action.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Age       *int      `json:"age"`
	Gender    *string   `gorm:"size:20" json:"gender"`
	Role      string    `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO (never carries the password hash)
type UserResponse struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Age    *int    `json:"age"`
	Gender *string `json:"gender"`
	Role   string  `json:"role"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Age:    u.Age,
		Gender: u.Gender,
		Role:   u.Role,
	}
}

// Scheme represents schemes table. Scheme lifecycle is managed outside
// this system; the application treats the catalog as read-only.
type Scheme struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	SchemeName      string     `gorm:"size:200;not null" json:"scheme_name"`
	ScholarshipName string     `gorm:"size:200;not null" json:"scholarship_name"`
	Amount          float64    `gorm:"type:decimal(12,2)" json:"amount"`
	AcademicYear    string     `gorm:"size:20;index" json:"academic_year"`
	Type            string     `gorm:"size:50;index" json:"type"`
	Category        string     `gorm:"size:50;index" json:"category"`
	International   bool       `gorm:"default:false" json:"international"`
	Deadline        *time.Time `gorm:"column:application_deadline" json:"application_deadline"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Scheme) TableName() string {
	return "schemes"
}

// Application represents applications table. The applicant payload is
// kept verbatim in Payload for audit/display; amount_applied is the one
// field mined out into its own column.
type Application struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"index;not null" json:"user_id"`
	SchemeID      uint           `gorm:"index;not null" json:"scheme_id"`
	AmountApplied *float64       `gorm:"type:decimal(12,2)" json:"amount_applied"`
	Payload       datatypes.JSON `gorm:"type:json" json:"payload"`
	Status        string         `gorm:"size:20;default:'Pending';index" json:"status"`
	AppliedAt     time.Time      `gorm:"autoCreateTime" json:"applied_at"`

	User      User                  `gorm:"foreignKey:UserID" json:"-"`
	Scheme    Scheme                `gorm:"foreignKey:SchemeID" json:"-"`
	Documents []ApplicationDocument `gorm:"foreignKey:ApplicationID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}

// ApplicationDocument represents application_documents table. Rows are
// created only inside the apply transaction, one per uploaded file, and
// are immutable afterwards.
type ApplicationDocument struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ApplicationID uint      `gorm:"index;not null" json:"application_id"`
	DocType       string    `gorm:"size:50;not null" json:"doc_type"`
	Filename      string    `gorm:"size:255;not null" json:"filename"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ApplicationDocument) TableName() string {
	return "application_documents"
}

// ApplicationSummary is the row shape for listing views that join
// applications with scheme (and for admin, user) display fields.
type ApplicationSummary struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	SchemeID        uint      `json:"scheme_id"`
	SchemeName      string    `json:"scheme_name"`
	ScholarshipName string    `json:"scholarship_name"`
	AmountApplied   *float64  `json:"amount_applied"`
	Status          string    `json:"status"`
	AppliedAt       time.Time `json:"applied_at"`
	UserName        string    `json:"user_name,omitempty"`
	UserEmail       string    `json:"user_email,omitempty"`
}

// AutoMigrate creates or updates the schema for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Scheme{},
		&Application{},
		&ApplicationDocument{},
	)
}
