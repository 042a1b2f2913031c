package telegram

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const botAPI = "https://api.telegram.org"

type BotInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type BotClient struct {
	token  string
	client *resty.Client
}

func NewBotClient(token string) *BotClient {
	return &BotClient{
		token: token,
		client: resty.New().
			SetBaseURL(botAPI).
			SetTimeout(10 * time.Second),
	}
}

// GetMe проверяет, что BOT_TOKEN живой. Вызывается при старте сервера.
func (c *BotClient) GetMe() (BotInfo, error) {
	var result struct {
		Ok     bool    `json:"ok"`
		Result BotInfo `json:"result"`
	}

	resp, err := c.client.R().
		SetResult(&result).
		Get(fmt.Sprintf("/bot%s/getMe", c.token))
	if err != nil {
		return BotInfo{}, errors.Wrap(err, "telegram getMe request failed")
	}
	if resp.IsError() || !result.Ok {
		return BotInfo{}, errors.Errorf("telegram getMe: status %d", resp.StatusCode())
	}

	return result.Result, nil
}

// SendMessage отправляет текстовое сообщение пользователю от имени бота.
func (c *BotClient) SendMessage(chatID int64, text string) error {
	var result struct {
		Ok bool `json:"ok"`
	}

	resp, err := c.client.R().
		SetBody(map[string]interface{}{
			"chat_id": chatID,
			"text":    text,
		}).
		SetResult(&result).
		Post(fmt.Sprintf("/bot%s/sendMessage", c.token))
	if err != nil {
		return errors.Wrap(err, "telegram sendMessage request failed")
	}
	if resp.IsError() || !result.Ok {
		return errors.Errorf("telegram sendMessage: status %d", resp.StatusCode())
	}

	return nil
}
