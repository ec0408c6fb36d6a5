package orgs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory(t *testing.T) {
	svc := NewService(NewInMemoryRepository(DefaultCatalog()))

	dir, err := svc.Directory(context.Background())
	require.NoError(t, err)
	assert.Len(t, dir.Academic, 21)
	assert.Len(t, dir.Corporate, 19)

	// Catalog order is preserved.
	assert.Equal(t, "babcock", dir.Academic[0].ID)
	assert.Equal(t, "paystack123", dir.Corporate[0].ID)
}

func TestGet(t *testing.T) {
	svc := NewService(NewInMemoryRepository(DefaultCatalog()))

	org, err := svc.Get(context.Background(), "uniben")
	require.NoError(t, err)
	assert.Equal(t, "University of Benin", org.Name)
	assert.Equal(t, CategoryAcademic, org.Category)

	_, err = svc.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrOrgNotFound)
}

func TestMemberJoined(t *testing.T) {
	svc := NewService(NewInMemoryRepository(DefaultCatalog()))
	ctx := context.Background()

	before, err := svc.Get(ctx, "paystack123")
	require.NoError(t, err)

	require.NoError(t, svc.MemberJoined(ctx, "paystack123"))

	after, err := svc.Get(ctx, "paystack123")
	require.NoError(t, err)
	assert.Equal(t, before.Members+1, after.Members)

	assert.ErrorIs(t, svc.MemberJoined(ctx, "nonexistent"), ErrOrgNotFound)
}
