package user

// Patch is a partial update: nil fields keep their current value, set
// fields replace it. Omitting a field never clears it.
type Patch struct {
	FirstName *string
	LastName  *string
	Age       *int
	Country   *string
	Province  *string
	City      *string
	Email     *string
}

// Apply merges the patch over the current state and returns the result.
// Pure function; id, password hash and timestamps are untouched.
func (p Patch) Apply(current User) User {
	next := current
	if p.FirstName != nil {
		next.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		next.LastName = *p.LastName
	}
	if p.Age != nil {
		next.Age = *p.Age
	}
	if p.Country != nil {
		next.Country = *p.Country
	}
	if p.Province != nil {
		next.Province = *p.Province
	}
	if p.City != nil {
		next.City = *p.City
	}
	if p.Email != nil {
		next.Email = *p.Email
	}
	return next
}
