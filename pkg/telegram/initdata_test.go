package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

// signInitData собирает initData с корректной подписью по алгоритму Telegram.
func signInitData(t *testing.T, params map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+params[k])
	}
	dataCheck := strings.Join(parts, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(testBotToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(dataCheck))
	hash := hex.EncodeToString(mac.Sum(nil))

	vals := url.Values{}
	for k, v := range params {
		vals.Set(k, v)
	}
	vals.Set("hash", hash)
	return vals.Encode()
}

func validParams() map[string]string {
	return map[string]string{
		"auth_date": "1735689600",
		"query_id":  "AAHdF6IQAAAAAN0XohDhrOrc",
		"user":      `{"id":42,"username":"ivan","first_name":"Иван","last_name":"Иванов"}`,
	}
}

func TestVerifyInitData_Valid(t *testing.T) {
	initData := signInitData(t, validParams())
	assert.True(t, VerifyInitData(initData, testBotToken))
}

func TestVerifyInitData_Deterministic(t *testing.T) {
	initData := signInitData(t, validParams())
	for i := 0; i < 5; i++ {
		assert.True(t, VerifyInitData(initData, testBotToken))
	}
}

func TestVerifyInitData_TamperedValue(t *testing.T) {
	params := validParams()
	initData := signInitData(t, params)

	// меняем один символ в auth_date, подпись должна перестать сходиться
	tampered := strings.Replace(initData, "1735689600", "1735689601", 1)
	require.NotEqual(t, initData, tampered)
	assert.False(t, VerifyInitData(tampered, testBotToken))
}

func TestVerifyInitData_WrongBotToken(t *testing.T) {
	initData := signInitData(t, validParams())
	assert.False(t, VerifyInitData(initData, "999999:other-bot-token"))
}

func TestVerifyInitData_Empty(t *testing.T) {
	assert.False(t, VerifyInitData("", testBotToken))
	assert.False(t, VerifyInitData("   ", testBotToken))
}

func TestVerifyInitData_MissingHash(t *testing.T) {
	vals := url.Values{}
	for k, v := range validParams() {
		vals.Set(k, v)
	}
	assert.False(t, VerifyInitData(vals.Encode(), testBotToken))
}

func TestVerifyInitData_MalformedQuery(t *testing.T) {
	assert.False(t, VerifyInitData("%zz%%%&hash=deadbeef", testBotToken))
}

func TestProfileFromInitData(t *testing.T) {
	initData := signInitData(t, validParams())

	profile, err := ProfileFromInitData(initData)
	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.TelegramID)
	assert.Equal(t, "ivan", profile.Username)
	assert.Equal(t, "Иван", profile.FirstName)
	assert.Equal(t, "Иванов", profile.LastName)
}

func TestProfileFromInitData_NoUser(t *testing.T) {
	params := map[string]string{"auth_date": "1735689600"}
	initData := signInitData(t, params)

	_, err := ProfileFromInitData(initData)
	assert.ErrorIs(t, err, ErrNoUserField)
}

func TestProfileFromInitData_BadUserJSON(t *testing.T) {
	params := map[string]string{"user": "{not json"}
	initData := signInitData(t, params)

	_, err := ProfileFromInitData(initData)
	assert.Error(t, err)
}
