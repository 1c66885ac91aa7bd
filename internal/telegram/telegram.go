// Package telegram sends reminder messages through the Telegram Bot API.
// Every call is a single synchronous POST; failures are reported, never
// retried here.
package telegram

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.telegram.org"
	sendTimeout    = 12 * time.Second
)

// Client talks to the Telegram Bot API. The zero value is not usable; use New.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: sendTimeout,
		},
	}
}

// apiResponse is the subset of the Bot API envelope we care about.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts a message to a chat. It returns (true, "Sent") on success and
// (false, detail) on any failure. Empty credentials or message text fail
// before any network call is made.
func (c *Client) Send(botToken, chatID, text string) (bool, string) {
	token := strings.TrimSpace(botToken)
	cid := strings.TrimSpace(chatID)
	msg := strings.TrimSpace(text)

	if token == "" {
		return false, "Missing bot token"
	}
	if cid == "" {
		return false, "Missing chat id"
	}
	if msg == "" {
		return false, "Message is empty"
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.BaseURL, token)
	form := url.Values{
		"chat_id":                  {cid},
		"text":                     {msg},
		"disable_web_page_preview": {"true"},
	}

	res, err := c.HTTPClient.PostForm(endpoint, form)
	if err != nil {
		return false, err.Error()
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return false, err.Error()
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return false, fmt.Sprintf("HTTP %d: %s", res.StatusCode, string(body))
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return false, err.Error()
	}
	if parsed.OK {
		return true, "Sent"
	}
	if parsed.Description != "" {
		return false, parsed.Description
	}
	return false, "Telegram API error"
}
