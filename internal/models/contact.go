package models

import "time"

type ContactStatus string

const (
	ContactUnread ContactStatus = "unread"
	ContactRead   ContactStatus = "read"
)

type ContactMessage struct {
	ID        string        `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"not null" json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `gorm:"not null" json:"message"`
	Status    ContactStatus `gorm:"type:varchar(10);not null;default:'unread'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
