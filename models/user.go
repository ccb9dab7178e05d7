package models

import "time"

// Role is the coarse permission level of an account.
type Role string

const (
	RolePatient      Role = "patient"
	RoleProfessional Role = "professional"
	RoleAdmin        Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleProfessional, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated identity behind a request.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// User represents a registered account.
type User struct {
	ID              string     `bson:"id" json:"id"`
	FirstName       string     `bson:"firstName" json:"firstName"`
	LastName        string     `bson:"lastName" json:"lastName"`
	Email           string     `bson:"email" json:"email"`
	PasswordHash    string     `bson:"passwordHash" json:"-"`
	Role            Role       `bson:"role" json:"role"`
	ChildBirthDate  *time.Time `bson:"childBirthDate,omitempty" json:"childBirthDate,omitempty"`
	ProfileComplete bool       `bson:"profileComplete" json:"profileComplete"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Actor returns the identity the user acts as.
func (u User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

// PublicProfile is the subset of a user exposed to other users.
type PublicProfile struct {
	ID        string `bson:"id" json:"id"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
}

func (u User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}

// UserRegistration is the payload accepted by the signup endpoint.
type UserRegistration struct {
	FirstName      string     `json:"firstName" binding:"required"`
	LastName       string     `json:"lastName" binding:"required"`
	Email          string     `json:"email" binding:"required,email"`
	Password       string     `json:"password" binding:"required,min=6"`
	ChildBirthDate *time.Time `json:"childBirthDate"`
}

// LoginRequest is the payload accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
