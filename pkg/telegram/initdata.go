package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strings"

	"dashboard_back/models"
)

var ErrNoUserField = errors.New("initData has no user field")

// VerifyInitData проверяет подпись initData из Telegram Mini App.
// Строка data_check_string: пары key=value (без hash), отсортированные по ключу,
// соединённые через \n. Ключ подписи: HMAC-SHA256("WebAppData", botToken).
// При дубликатах ключей берётся первое значение.
func VerifyInitData(initData string, botToken string) bool {
	initData = strings.TrimSpace(initData)
	if initData == "" {
		return false
	}

	vals, err := url.ParseQuery(initData)
	if err != nil {
		return false
	}

	providedHash := vals.Get("hash")
	if providedHash == "" {
		return false
	}
	vals.Del("hash")

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+vals.Get(k))
	}
	dataCheck := strings.Join(parts, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	secretKey := secret.Sum(nil)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(dataCheck))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(providedHash))
}

// ProfileFromInitData достаёт профиль пользователя из поля user.
// Подпись здесь НЕ проверяется — сначала VerifyInitData.
func ProfileFromInitData(initData string) (models.TelegramProfile, error) {
	vals, err := url.ParseQuery(strings.TrimSpace(initData))
	if err != nil {
		return models.TelegramProfile{}, err
	}

	userRaw := vals.Get("user")
	if userRaw == "" {
		return models.TelegramProfile{}, ErrNoUserField
	}

	var profile models.TelegramProfile
	if err := json.Unmarshal([]byte(userRaw), &profile); err != nil {
		return models.TelegramProfile{}, err
	}
	if profile.TelegramID == 0 {
		return models.TelegramProfile{}, ErrNoUserField
	}

	return profile, nil
}
