package domain

import "context"

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type User struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Status           UserStatus `json:"status"`
	RegistrationDate string     `json:"registrationDate"`
	Lifecycle
}

type UserRepository interface {
	GetAll(ctx context.Context, filters Filters) ([]User, *Metadata, error)
	GetById(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	SoftDelete(ctx context.Context, id int64) (User, error)
	Restore(ctx context.Context, id int64) (User, error)
}
