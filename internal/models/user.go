package models

// User is the public profile of a registered account. It is what gets stored
// in the users collection and embedded into tweets.
type User struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	BirthDate *Date  `json:"birth_date"` // Optional, null when unknown
}

// UserLogin carries the credentials of an existing account.
// No operation consumes it yet; it only defines the accepted shape.
type UserLogin struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16"`
}

// UserRegister is the signup request body: a full User plus a password.
type UserRegister struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	BirthDate *Date  `json:"birth_date"`
	Password  string `json:"password" validate:"required,min=8,max=16"`
}

// User returns the profile part of the registration. The password is
// intentionally left behind.
func (r UserRegister) User() User {
	return User{
		UserID:    r.UserID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate.Copy(),
	}
}

// Snapshot returns a deep copy of the user, safe to embed into another record.
func (u User) Snapshot() User {
	u.BirthDate = u.BirthDate.Copy()
	return u
}
