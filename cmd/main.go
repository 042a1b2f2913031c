package main

import (
	"os"
	"time"

	dashboard "dashboard_back"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"dashboard_back/pkg/handler"
	"dashboard_back/pkg/repository"
	"dashboard_back/pkg/service"
	"dashboard_back/pkg/telegram"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))
	logrus.Infoln("Запуск сервера")
	if err := godotenv.Load(); err != nil {
		logrus.Infof("Ошибка инициализации переменных окружения .env: %s \n", err)
	}

	if err := InitConfig(); err != nil {
		logrus.Fatalf("Ошибка (viper) при инициализации конфига .yaml: %s \n", err.Error())
	}
	logrus.Infoln("Конфиг YAML инициализирован")

	db, err := repository.NewPostgresDB(repository.Config{
		Host:     viper.GetString("db.host"),
		Port:     viper.GetString("db.port"),
		Username: viper.GetString("db.username"),
		Password: os.Getenv("DB_PASS_LOCAL"),
		DBName:   viper.GetString("db.dbname"),
		SSLMode:  viper.GetString("db.sslmode"),
	})
	if err != nil {
		logrus.Fatalf("Ошибка при инициализации базы данных: %s \n", err.Error())
	}
	logrus.Info("База данных подключена")

	botToken := os.Getenv("BOT_TOKEN")
	jwtSecret := os.Getenv("JWT_SECRET")
	if botToken == "" || jwtSecret == "" {
		logrus.Fatalln("BOT_TOKEN и JWT_SECRET обязательны")
	}

	bot := telegram.NewBotClient(botToken)
	if info, err := bot.GetMe(); err != nil {
		logrus.Errorf("Не удалось проверить BOT_TOKEN через getMe: %s \n", err.Error())
	} else {
		logrus.Infof("Бот подключен: @%s", info.Username)
	}

	repos := repository.NewRepository(db)
	services := service.NewService(repos, service.AuthConfig{
		BotToken:    botToken,
		JWTSecret:   jwtSecret,
		SessionTTL:  viper.GetDuration("auth.session_ttl"),
		BotTokenTTL: viper.GetDuration("auth.bot_token_ttl"),
	}, bot)
	handlers := handler.NewHandler(services, jwtSecret)

	srv := new(dashboard.Server)
	if err := srv.Run(os.Getenv("PORT"), handlers.InitRoute()); err != nil {
		logrus.Fatalf("Ошибка при запуске сервера: %s \n", err)
	}
}

func InitConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.SetDefault("auth.session_ttl", 24*time.Hour)
	viper.SetDefault("auth.bot_token_ttl", 10*time.Minute)
	return viper.ReadInConfig()
}
