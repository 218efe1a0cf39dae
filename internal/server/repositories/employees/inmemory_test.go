package employees

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatech/employee-portal/internal/common"
	"github.com/innovatech/employee-portal/internal/server/models"
)

func seed(t *testing.T, r *InMemoryRepository, ids ...string) {
	t.Helper()
	for _, id := range ids {
		err := r.Create(context.Background(), &models.Employee{
			EmployeeID: id,
			Name:       "n-" + id,
			Email:      id + "@innovatech.com",
			Department: "Engineering",
			Status:     models.StatusActive,
		})
		require.NoError(t, err)
	}
}

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	r := NewInMemoryRepository()
	seed(t, r, "emp-1")

	e, err := r.Get(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "n-emp-1", e.Name)

	_, err = r.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInMemoryRepository_CreateDuplicate(t *testing.T) {
	r := NewInMemoryRepository()
	seed(t, r, "emp-1")

	err := r.Create(context.Background(), &models.Employee{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestInMemoryRepository_ListPreservesInsertionOrder(t *testing.T) {
	r := NewInMemoryRepository()
	seed(t, r, "emp-3", "emp-1", "emp-2")

	list, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "emp-3", list[0].EmployeeID)
	assert.Equal(t, "emp-1", list[1].EmployeeID)
	assert.Equal(t, "emp-2", list[2].EmployeeID)
}

func TestInMemoryRepository_GetReturnsCopy(t *testing.T) {
	r := NewInMemoryRepository()
	seed(t, r, "emp-1")

	e, err := r.Get(context.Background(), "emp-1")
	require.NoError(t, err)
	e.Name = "mutated"

	again, err := r.Get(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "n-emp-1", again.Name)
}

func TestInMemoryRepository_Update(t *testing.T) {
	r := NewInMemoryRepository()
	seed(t, r, "emp-1")

	updated, err := r.Update(context.Background(), &models.Employee{
		EmployeeID: "emp-1",
		Name:       "New Name",
		Email:      "new@innovatech.com",
		Department: "Ops",
		Status:     models.StatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)

	_, err = r.Update(context.Background(), &models.Employee{EmployeeID: "nope"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInMemoryRepository_SetStatusAndDelete(t *testing.T) {
	r := NewInMemoryRepository()
	seed(t, r, "emp-1", "emp-2")

	require.NoError(t, r.SetStatus(context.Background(), "emp-1", models.StatusDeleting))

	e, err := r.Get(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeleting, e.Status)

	// the record stays listed while DELETING
	list, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, r.Delete(context.Background(), "emp-1"))
	list, err = r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "emp-2", list[0].EmployeeID)

	assert.ErrorIs(t, r.Delete(context.Background(), "emp-1"), common.ErrNotFound)
	assert.ErrorIs(t, r.SetStatus(context.Background(), "nope", models.StatusActive), common.ErrNotFound)
}

func TestInMemoryRepository_ReapDropsExpiredDeleting(t *testing.T) {
	r := NewInMemoryRepository()
	seed(t, r, "emp-1", "emp-2")

	require.NoError(t, r.SetStatus(context.Background(), "emp-1", models.StatusDeleting))
	r.deleting["emp-1"] = time.Now().Add(-time.Hour)

	r.reap(30 * time.Minute)

	_, err := r.Get(context.Background(), "emp-1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// ACTIVE records are untouched
	_, err = r.Get(context.Background(), "emp-2")
	assert.NoError(t, err)
}
