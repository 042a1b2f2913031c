package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"dashboard_back/models"
	"dashboard_back/pkg/cache"
	"dashboard_back/pkg/repository"
	"dashboard_back/pkg/telegram"
	"dashboard_back/pkg/utils"
)

var (
	// ErrInvalidSignature — подпись initData не сошлась, 401.
	ErrInvalidSignature = errors.New("invalid init data signature")
	// ErrMissingUserData — в payload нет данных пользователя, 400.
	ErrMissingUserData = errors.New("missing user data")
	// ErrTokenInvalidOrExpired — одноразовый токен не прошёл проверку, 400.
	// Сообщение нарочно одно на все случаи (нет / просрочен / уже использован).
	ErrTokenInvalidOrExpired = errors.New("invalid or expired token")
	// ErrStorageUnavailable — ошибка БД, 500, клиент может повторить запрос.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type AuthService struct {
	repos         repository.Authorization
	notifications repository.Notification
	cfg           AuthConfig
	bot           *telegram.BotClient
}

func NewAuthService(repos repository.Authorization, notifications repository.Notification, cfg AuthConfig, bot *telegram.BotClient) *AuthService {
	return &AuthService{
		repos:         repos,
		notifications: notifications,
		cfg:           cfg,
		bot:           bot,
	}
}

// LoginWithInitData — основной вход: initData из Telegram.WebApp → пользователь + сессия.
func (s *AuthService) LoginWithInitData(initData string) (models.User, string, error) {
	if !telegram.VerifyInitData(initData, s.cfg.BotToken) {
		return models.User{}, "", ErrInvalidSignature
	}

	profile, err := telegram.ProfileFromInitData(initData)
	if err != nil {
		return models.User{}, "", ErrMissingUserData
	}

	user, err := s.resolveUser(profile)
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.mintSessionToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// GenerateBotToken создаёт одноразовый токен для входа через бота.
func (s *AuthService) GenerateBotToken() (models.AuthToken, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return models.AuthToken{}, err
	}

	token := models.AuthToken{
		Token:     base64.RawURLEncoding.EncodeToString(b),
		ExpiresAt: time.Now().UTC().Add(s.cfg.BotTokenTTL),
	}

	if err := s.repos.CreateAuthToken(token); err != nil {
		logrus.Errorf("generate_token: не удалось сохранить токен: %s", err.Error())
		return models.AuthToken{}, errors.Wrap(ErrStorageUnavailable, err.Error())
	}

	return token, nil
}

// VerifyBotToken гасит одноразовый токен и выдаёт сессию.
func (s *AuthService) VerifyBotToken(req models.BotAuthRequest) (models.User, string, error) {
	if req.Token == "" {
		return models.User{}, "", ErrTokenInvalidOrExpired
	}
	if req.TelegramID == 0 {
		return models.User{}, "", ErrMissingUserData
	}

	if err := s.repos.ConsumeAuthToken(req.Token, time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrTokenConsumed) {
			logrus.Infof("verify_token: токен отклонён, telegram_id=%d", req.TelegramID)
			return models.User{}, "", ErrTokenInvalidOrExpired
		}
		logrus.Errorf("verify_token: ошибка БД: %s", err.Error())
		return models.User{}, "", errors.Wrap(ErrStorageUnavailable, err.Error())
	}

	user, err := s.resolveUser(models.TelegramProfile{
		TelegramID: req.TelegramID,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	})
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.mintSessionToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	if s.bot != nil {
		go func() {
			if err := s.bot.SendMessage(user.TelegramID, "Вход в панель выполнен."); err != nil {
				logrus.Errorf("Не удалось отправить сообщение о входе: %s", err.Error())
			}
		}()
	}

	return user, token, nil
}

func (s *AuthService) GetUserByTelegramId(telegramID int64) (models.User, error) {
	if user, ok := cache.GetCachedUser(telegramID); ok {
		return user, nil
	}

	user, err := s.repos.GetUserByTelegramId(telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, err
		}
		return models.User{}, errors.Wrap(ErrStorageUnavailable, err.Error())
	}

	cache.SetCachedUser(user)
	return user, nil
}

// resolveUser — upsert по telegram_id. Новые значения профиля перетирают старые
// только если непустые: частичный payload не должен стирать известные данные.
func (s *AuthService) resolveUser(profile models.TelegramProfile) (models.User, error) {
	existing, err := s.repos.GetUserByTelegramId(profile.TelegramID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return models.User{}, errors.Wrap(ErrStorageUnavailable, err.Error())
		}
		return s.createUser(profile)
	}

	if profile.Username != "" {
		existing.Username = profile.Username
	}
	if profile.FirstName != "" {
		existing.FirstName = profile.FirstName
	}
	if profile.LastName != "" {
		existing.LastName = profile.LastName
	}
	existing.FullName = buildFullName(existing.FirstName, existing.LastName, existing.Username, existing.TelegramID)

	if err := s.repos.UpdateUserProfile(existing); err != nil {
		return models.User{}, errors.Wrap(ErrStorageUnavailable, err.Error())
	}
	cache.DropCachedUser(existing.TelegramID)

	return existing, nil
}

func (s *AuthService) createUser(profile models.TelegramProfile) (models.User, error) {
	user := models.User{
		TelegramID: profile.TelegramID,
		Username:   profile.Username,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		FullName:   buildFullName(profile.FirstName, profile.LastName, profile.Username, profile.TelegramID),
		Role:       "user",
	}

	id, err := s.repos.CreateUser(user)
	if err != nil {
		return models.User{}, errors.Wrap(ErrStorageUnavailable, err.Error())
	}
	user.Id = id

	logrus.Infof("Создан новый пользователь: id=%d telegram_id=%d", user.Id, user.TelegramID)

	if _, err := s.notifications.CreateNotification(models.Notification{
		UserID: user.Id,
		Title:  "Добро пожаловать!",
		Body:   "Ваш аккаунт создан. Теперь вам доступны задачи и уведомления.",
	}); err != nil {
		logrus.Errorf("Не удалось создать приветственное уведомление: %s", err.Error())
	}

	go utils.SendNewUserMail(user.TelegramID, user.FullName)

	return user, nil
}

func buildFullName(firstName, lastName, username string, telegramID int64) string {
	fullName := strings.TrimSpace(firstName + " " + lastName)
	if fullName != "" {
		return fullName
	}
	if username != "" {
		return username
	}
	return fmt.Sprintf("user_%d", telegramID)
}
