package telegram

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendValidation(t *testing.T) {
	// BaseURL points nowhere so any network attempt fails loudly.
	client := New()
	client.BaseURL = "http://127.0.0.1:0"

	tests := []struct {
		name   string
		token  string
		chatID string
		text   string
		detail string
	}{
		{"missing token", "", "123", "hello", "Missing bot token"},
		{"blank token", "   ", "123", "hello", "Missing bot token"},
		{"missing chat id", "tok", "", "hello", "Missing chat id"},
		{"empty message", "tok", "123", "  ", "Message is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, detail := client.Send(tt.token, tt.chatID, tt.text)
			if ok {
				t.Error("Send = true, want false")
			}
			if detail != tt.detail {
				t.Errorf("detail = %q, want %q", detail, tt.detail)
			}
		})
	}
}

func TestSendSuccess(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotForm = map[string]string{
			"chat_id":                  r.PostFormValue("chat_id"),
			"text":                     r.PostFormValue("text"),
			"disable_web_page_preview": r.PostFormValue("disable_web_page_preview"),
		}
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	client := New()
	client.BaseURL = srv.URL

	ok, detail := client.Send("bot-token", "12345", "evening check-in")
	if !ok {
		t.Fatalf("Send = false (%s), want true", detail)
	}
	if detail != "Sent" {
		t.Errorf("detail = %q, want %q", detail, "Sent")
	}
	if gotPath != "/botbot-token/sendMessage" {
		t.Errorf("path = %q", gotPath)
	}
	if gotForm["chat_id"] != "12345" || gotForm["text"] != "evening check-in" {
		t.Errorf("form = %+v", gotForm)
	}
	if gotForm["disable_web_page_preview"] != "true" {
		t.Errorf("disable_web_page_preview = %q, want true", gotForm["disable_web_page_preview"])
	}
}

func TestSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	client := New()
	client.BaseURL = srv.URL

	ok, detail := client.Send("tok", "12345", "hello")
	if ok {
		t.Error("Send = true, want false")
	}
	if detail != "Bad Request: chat not found" {
		t.Errorf("detail = %q, want the API description", detail)
	}
}

func TestSendHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`unauthorized`))
	}))
	defer srv.Close()

	client := New()
	client.BaseURL = srv.URL

	ok, detail := client.Send("tok", "12345", "hello")
	if ok {
		t.Error("Send = true, want false")
	}
	if detail != "HTTP 401: unauthorized" {
		t.Errorf("detail = %q, want %q", detail, "HTTP 401: unauthorized")
	}
}
