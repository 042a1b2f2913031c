package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dashboard_back/models"
)

func TestUserCache_SetGet(t *testing.T) {
	user := models.User{Id: 1, TelegramID: 111, FullName: "Test User"}
	SetCachedUser(user)

	got, ok := GetCachedUser(111)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestUserCache_Miss(t *testing.T) {
	_, ok := GetCachedUser(222)
	assert.False(t, ok)
}

func TestUserCache_Drop(t *testing.T) {
	SetCachedUser(models.User{Id: 2, TelegramID: 333})
	DropCachedUser(333)

	_, ok := GetCachedUser(333)
	assert.False(t, ok)
}

func TestUserCache_Expired(t *testing.T) {
	SetCachedUser(models.User{Id: 3, TelegramID: 444})

	mu.Lock()
	entry := cachedUsers[444]
	entry.Timestamp = time.Now().Add(-cacheDuration - time.Second)
	cachedUsers[444] = entry
	mu.Unlock()

	_, ok := GetCachedUser(444)
	assert.False(t, ok)
}
