package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTwilioSender_Send(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid": "SM123", "status": "queued"}`))
	}))
	defer server.Close()

	sender := NewTwilioSender(zap.NewNop(), "AC123", "token-456", "+15550009999")
	sender.apiURL = server.URL

	err := sender.Send(context.Background(), "+15550001111", "Your order is placed")
	require.NoError(t, err)

	require.Equal(t, "/Accounts/AC123/Messages.json", gotPath)
	require.Equal(t, "AC123", gotUser)
	require.Equal(t, "token-456", gotPass)
	require.Equal(t, "+15550001111", gotTo)
	require.Equal(t, "+15550009999", gotFrom)
	require.Equal(t, "Your order is placed", gotBody)
}

func TestTwilioSender_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code": 20003, "message": "Authenticate"}`))
	}))
	defer server.Close()

	sender := NewTwilioSender(zap.NewNop(), "AC123", "bad-token", "+15550009999")
	sender.apiURL = server.URL

	err := sender.Send(context.Background(), "+15550001111", "hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 401")
}

func TestNoOpSender_Send(t *testing.T) {
	sender := NewNoOpSender(zap.NewNop())
	require.NoError(t, sender.Send(context.Background(), "+15550001111", "hello"))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "0123456789...", truncate("0123456789abcdef", 10))
}
