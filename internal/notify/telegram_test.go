package notify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"library-service/config"
	"library-service/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramSenderPostsForm(t *testing.T) {
	var gotChatID, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotChatID = r.PostFormValue("chat_id")
		gotText = r.PostFormValue("text")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := notify.NewTelegramSender(config.NotifierConfig{APIURL: srv.URL, ChatID: "-100200300"})
	require.NoError(t, s.Send(context.Background(), "Book 'Kobzar' is overdue."))

	assert.Equal(t, "-100200300", gotChatID)
	assert.Equal(t, "Book 'Kobzar' is overdue.", gotText)
}

func TestTelegramSenderNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusBadGateway)
	}))
	defer srv.Close()

	s := notify.NewTelegramSender(config.NotifierConfig{APIURL: srv.URL, ChatID: "-100200300"})
	err := s.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
