package user

import "time"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleEngineer    Role = "engineer"
	RoleContractor  Role = "contractor"
	RoleSiteManager Role = "site_manager"
	RoleWorker      Role = "worker"
)

// Roles lists every valid role value.
var Roles = []string{"admin", "engineer", "contractor", "site_manager", "worker"}

func ValidRole(r string) bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	Email    string  `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password *string `gorm:"size:255" json:"-"`
	GoogleID *string `gorm:"size:100;uniqueIndex" json:"-"`
	Role     string  `gorm:"type:user_role;default:'worker';not null" json:"role"`
	Phone    string  `gorm:"size:30" json:"phone"`

	// Worker-only attributes.
	DailyWage      float64 `gorm:"default:0" json:"dailyWage"`
	Specialization string  `gorm:"size:100;default:'General Labor'" json:"specialization"`
	IsAvailable    bool    `gorm:"default:true" json:"isAvailable"`

	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
