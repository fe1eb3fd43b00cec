package user

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// MaxBatchSize bounds a single bulk-create request.
const MaxBatchSize = 1000

// CreateUser is the input shape for single and bulk creation. The
// plaintext password never crosses the repository boundary.
type CreateUser struct {
	FirstName string
	LastName  string
	Age       int
	Country   string
	Province  string
	City      string
	Email     string
	Password  string
}

// PasswordHasher abstracts one-way credential hashing.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// UseCase exposes the user management use cases, one method per
// inbound operation.
type UseCase interface {
	Create(ctx context.Context, in CreateUser) (User, error)
	CreateBatch(ctx context.Context, in []CreateUser) ([]User, error)
	Update(ctx context.Context, id int64, patch Patch) (User, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, q ListQuery) (PaginatedResult, error)
}

type service struct {
	repo   Repository
	hasher PasswordHasher
}

// NewService returns the default UseCase implementation.
func NewService(repo Repository, hasher PasswordHasher) UseCase {
	return &service{repo: repo, hasher: hasher}
}

func (s *service) Create(ctx context.Context, in CreateUser) (User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, err
	}
	return s.repo.Create(ctx, newUser(in, hash, time.Now().UTC()))
}

func (s *service) CreateBatch(ctx context.Context, in []CreateUser) ([]User, error) {
	if len(in) == 0 || len(in) > MaxBatchSize {
		return nil, ErrBatchSize
	}

	// Hash concurrently, join by index so the batch keeps input order
	// regardless of completion order.
	users := make([]User, len(in))
	g, gctx := errgroup.WithContext(ctx)
	for i, dto := range in {
		i, dto := i, dto
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hash, err := s.hasher.Hash(dto.Password)
			if err != nil {
				return err
			}
			users[i] = newUser(dto, hash, time.Now().UTC())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.repo.CreateBatch(ctx, users)
}

func (s *service) Update(ctx context.Context, id int64, patch Patch) (User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	return s.repo.Update(ctx, patch.Apply(current))
}

// Delete removes the row without checking existence first; deleting a
// missing user is a no-op by contract.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id int64) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	// A soft-deleted row reads as absent even though the store still
	// holds it.
	if u.Deleted() {
		return User{}, NotFoundError{ID: id}
	}
	return u, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if u.Deleted() {
		return User{}, ErrNotFound
	}
	return u, nil
}

// List forwards the query verbatim; page bounds and totals are the
// store's business.
func (s *service) List(ctx context.Context, q ListQuery) (PaginatedResult, error) {
	return s.repo.List(ctx, q)
}

func newUser(in CreateUser, hash string, createdAt time.Time) User {
	return User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Age:          in.Age,
		Country:      in.Country,
		Province:     in.Province,
		City:         in.City,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    createdAt,
	}
}
