package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost", time.Second)
	client2 := NewHTTPClient("http://localhost", time.Second)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_TrimsBaseURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/v3/directline/", time.Second)
	_, err := client.R().Get("/tokens/refresh")
	require.NoError(t, err)
	assert.Equal(t, "/v3/directline/tokens/refresh", gotPath)
}

func TestHTTPClient_Bearer(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	_, err := client.Bearer(context.Background(), "S").Post("/tokens/generate")
	require.NoError(t, err)

	assert.Equal(t, "Bearer S", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestHTTPClient_Bearer_EmptyCredential(t *testing.T) {
	var auth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Values("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	_, err := client.Bearer(context.Background(), "").Get("/conversations/c1")
	require.NoError(t, err)
	require.Len(t, auth, 1)
	assert.Equal(t, "Bearer", strings.TrimSpace(auth[0]))
}

func TestIDGenerator_NewID(t *testing.T) {
	g := NewIDGenerator()
	a, b := g.NewID(), g.NewID()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
