package user

import (
	"context"
	"time"
)

// User is a domain entity representing a managed user record.
// The id is assigned by the store and stays zero until persisted.
type User struct {
	ID           int64      `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Age          int        `json:"age"`
	Country      string     `json:"country"`
	Province     string     `json:"province"`
	City         string     `json:"city"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}

// Deleted reports whether the soft-delete marker is set.
func (u User) Deleted() bool { return u.DeletedAt != nil }

// PaginatedResult wraps one page of users together with the totals the
// store computed for the full filtered set. Totals are passed through
// verbatim, never recomputed on this side.
type PaginatedResult struct {
	Items      []User `json:"items"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
	TotalCount int    `json:"totalCount"`
}

// ListQuery describes a page request with optional filters. Nil filter
// means "no constraint". Page and PageSize go to the store as-is.
type ListQuery struct {
	Page     int
	PageSize int
	Age      *int
	Country  *string
}

// Repository abstracts persistence concerns from the domain layer.
type Repository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, q ListQuery) (PaginatedResult, error)
	Create(ctx context.Context, u User) (User, error)
	CreateBatch(ctx context.Context, users []User) ([]User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id int64) error
}
