package cache

import (
	"sync"
	"time"

	"dashboard_back/models"
)

type CachedUser struct {
	User      models.User
	Timestamp time.Time
}

var (
	cachedUsers   = make(map[int64]CachedUser)
	cacheDuration = 10 * time.Minute
	mu            sync.Mutex
)

// GetCachedUser возвращает пользователя из кэша или false, если его нет или запись устарела
func GetCachedUser(telegramID int64) (models.User, bool) {
	mu.Lock()
	defer mu.Unlock()

	userData, ok := cachedUsers[telegramID]
	if !ok {
		return models.User{}, false
	}

	if time.Since(userData.Timestamp) > cacheDuration {
		return models.User{}, false
	}

	return userData.User, true
}

// SetCachedUser сохраняет пользователя в кэш
func SetCachedUser(user models.User) {
	mu.Lock()
	defer mu.Unlock()

	cachedUsers[user.TelegramID] = CachedUser{
		User:      user,
		Timestamp: time.Now(),
	}
}

// DropCachedUser убирает пользователя из кэша (после обновления профиля)
func DropCachedUser(telegramID int64) {
	mu.Lock()
	defer mu.Unlock()

	delete(cachedUsers, telegramID)
}
