package user

import "github.com/google/uuid"

// Recipient is the read-only slice of a user account the booking flow needs.
type Recipient struct {
	ID       uuid.UUID
	Email    string
	Role     Role
	IsActive bool
}

func StaffEmails(users []Recipient) []string {
	emails := make([]string, 0, len(users))
	for _, u := range users {
		if u.IsActive && u.Role.IsStaff() && u.Email != "" {
			emails = append(emails, u.Email)
		}
	}
	return emails
}
