package model

import "time"

// User is an account with its career profile
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	IsPremium    bool      `json:"isPremium" bson:"isPremium"`
	JobTitle     string    `json:"jobTitle" bson:"jobTitle"`
	Industry     string    `json:"industry" bson:"industry"`
	Tasks        []string  `json:"tasks" bson:"tasks"` // Daily task labels
	YearsInRole  int       `json:"yearsInRole" bson:"yearsInRole"`
	Skills       []string  `json:"skills" bson:"skills"` // Existing skills, used by courses & what-if
	AlertEmail   bool      `json:"alertEmail" bson:"alertEmail"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// HasCompleteProfile reports whether the user can be scored
func (u *User) HasCompleteProfile() bool {
	return u.JobTitle != "" && u.Industry != ""
}

// ProfileUpdate carries partial profile changes; nil fields are left untouched
type ProfileUpdate struct {
	JobTitle    *string  `json:"jobTitle"`
	Industry    *string  `json:"industry"`
	Tasks       []string `json:"tasks"`
	YearsInRole *int     `json:"yearsInRole"`
	Skills      []string `json:"skills"`
	AlertEmail  *bool    `json:"alertEmail"`
}
