package warehouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/sandwich-unwrapped/internal/domain/customer"
)

func TestCustomerRepository_FindByPhone(t *testing.T) {
	wh, counter := openSeeded(t)
	repo := NewCustomerRepository(wh)
	ctx := context.Background()

	c, err := repo.FindByPhone(ctx, "555-010-0002")
	require.NoError(t, err)
	assert.Equal(t, "2", c.Key)
	assert.Equal(t, "Alan", c.FirstName)
	assert.Equal(t, "Turing", c.LastName)
	assert.Equal(t, "555-010-0002", c.PhoneNumber)

	_, err = repo.FindByPhone(ctx, "555-999-9999")
	require.ErrorIs(t, err, customer.ErrNotFound)

	assertBalanced(t, counter)
}

func TestSandwichRepository_ListByCustomer(t *testing.T) {
	wh, counter := openSeeded(t)
	repo := NewSandwichRepository(wh)
	ctx := context.Background()

	details, err := repo.ListByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "Turkey Club", details[0].Name)
	assert.NotEmpty(t, details[0].Description)
	assert.Equal(t, "Veggie Delight", details[1].Name)
	assert.Empty(t, details[1].Description)

	details, err = repo.ListByCustomer(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, details)
	assert.Empty(t, details)

	assertBalanced(t, counter)
}
