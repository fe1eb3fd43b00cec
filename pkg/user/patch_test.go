package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPatchApply(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	current := User{
		ID:           7,
		FirstName:    "Grace",
		LastName:     "Hopper",
		Age:          45,
		Country:      "US",
		Province:     "Virginia",
		City:         "Arlington",
		Email:        "grace@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    createdAt,
	}

	t.Run("empty patch returns current state", func(t *testing.T) {
		require.Equal(t, current, Patch{}.Apply(current))
	})

	t.Run("set fields replace, omitted fields stay", func(t *testing.T) {
		first := "Amazing"
		country := "USA"
		next := Patch{FirstName: &first, Country: &country}.Apply(current)

		require.Equal(t, "Amazing", next.FirstName)
		require.Equal(t, "USA", next.Country)
		require.Equal(t, current.LastName, next.LastName)
		require.Equal(t, current.City, next.City)
		require.Equal(t, current.Email, next.Email)
	})

	t.Run("empty string is a value, not an omission", func(t *testing.T) {
		empty := ""
		next := Patch{Province: &empty}.Apply(current)
		require.Equal(t, "", next.Province)
	})

	t.Run("id, hash and timestamps never change", func(t *testing.T) {
		first := "X"
		next := Patch{FirstName: &first}.Apply(current)
		require.Equal(t, current.ID, next.ID)
		require.Equal(t, current.PasswordHash, next.PasswordHash)
		require.Equal(t, current.CreatedAt, next.CreatedAt)
		require.Nil(t, next.DeletedAt)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		first := "Mutant"
		_ = Patch{FirstName: &first}.Apply(current)
		require.Equal(t, "Grace", current.FirstName)
	})
}
