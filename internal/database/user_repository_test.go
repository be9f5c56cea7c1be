package database

import (
	"testing"

	"github.com/example/limudbot/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUpsertAndGet(t *testing.T) {
	setupTestDB(t)
	repo := NewUserRepository()

	user := &models.User{
		ID:                  42,
		Username:            "learner",
		FirstName:           "Dov",
		NotificationEnabled: true,
		NotificationHour:    9,
	}
	require.NoError(t, repo.Upsert(user))

	loaded, err := repo.GetByID(42)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "learner", loaded.Username)
	assert.Equal(t, "Dov", loaded.FirstName)
	assert.True(t, loaded.NotificationEnabled)
	assert.Equal(t, 9, loaded.NotificationHour)
}

func TestUserUpsertUpdatesExisting(t *testing.T) {
	setupTestDB(t)
	repo := NewUserRepository()

	require.NoError(t, repo.Upsert(&models.User{ID: 42, Username: "old_name"}))
	require.NoError(t, repo.Upsert(&models.User{ID: 42, Username: "new_name", FirstName: "Dov"}))

	loaded, err := repo.GetByID(42)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "new_name", loaded.Username)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserGetByIDMissing(t *testing.T) {
	setupTestDB(t)
	repo := NewUserRepository()

	user, err := repo.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateNotificationSettings(t *testing.T) {
	setupTestDB(t)
	repo := NewUserRepository()

	require.NoError(t, repo.Upsert(&models.User{ID: 42, NotificationEnabled: true, NotificationHour: 9}))
	require.NoError(t, repo.UpdateNotificationSettings(42, false, 20))

	loaded, err := repo.GetByID(42)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.False(t, loaded.NotificationEnabled)
	assert.Equal(t, 20, loaded.NotificationHour)
}

func TestGetUsersForNotification(t *testing.T) {
	setupTestDB(t)
	repo := NewUserRepository()

	require.NoError(t, repo.Upsert(&models.User{ID: 1, NotificationEnabled: true, NotificationHour: 9}))
	require.NoError(t, repo.Upsert(&models.User{ID: 2, NotificationEnabled: true, NotificationHour: 20}))
	require.NoError(t, repo.Upsert(&models.User{ID: 3, NotificationEnabled: false, NotificationHour: 9}))

	users, err := repo.GetUsersForNotification(9)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(1), users[0].ID)
}
