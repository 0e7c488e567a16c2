package models

import "unicode/utf8"

const (
	UserNameMaxLen    = 30
	UserAddressMaxLen = 100
	UserEmailMaxLen   = 200
)

type User struct {
	ID      uint    `gorm:"primaryKey"`
	Name    string  `gorm:"type:varchar(30);not null"`
	Address string  `gorm:"type:varchar(100);not null"`
	Email   *string `gorm:"type:varchar(200);uniqueIndex"`

	// Relationships
	Orders []Order `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// CheckColumns enforces the column definitions above before a write.
func (u *User) CheckColumns() error {
	if u.Name == "" {
		return &ConstraintViolation{Field: "name", Message: "Must not be null."}
	}

	if utf8.RuneCountInString(u.Name) > UserNameMaxLen {
		return &ConstraintViolation{Field: "name", Message: "Longer than maximum length 30."}
	}

	if u.Address == "" {
		return &ConstraintViolation{Field: "address", Message: "Must not be null."}
	}

	if utf8.RuneCountInString(u.Address) > UserAddressMaxLen {
		return &ConstraintViolation{Field: "address", Message: "Longer than maximum length 100."}
	}

	if u.Email != nil && utf8.RuneCountInString(*u.Email) > UserEmailMaxLen {
		return &ConstraintViolation{Field: "email", Message: "Longer than maximum length 200."}
	}

	return nil
}
