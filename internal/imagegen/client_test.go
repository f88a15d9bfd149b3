package imagegen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_GenerateSpecialtyIcon(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/images", r.URL.Path)

		var req struct {
			Prompt string `json:"prompt"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPrompt = req.Prompt

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/icon.png"})
	}))
	defer server.Close()

	client := New(server.URL, "")
	url, err := client.GenerateSpecialtyIcon(context.Background(), "Cardiologia")
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/icon.png", url)
	assert.True(t, strings.Contains(gotPrompt, "Cardiologia"))
}

func TestClient_GenerateNewsImage_SendsAuthToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/news.png"})
	}))
	defer server.Close()

	client := New(server.URL, "test-key")
	url, err := client.GenerateNewsImage(context.Background(), "Campanha de vacinação", "Saúde")
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/news.png", url)
}

func TestClient_Generate_UpstreamFailure(t *testing.T) {
	t.Run("error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := New(server.URL, "")
		_, err := client.GenerateSpecialtyIcon(context.Background(), "Cardiologia")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("empty url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"url": ""})
		}))
		defer server.Close()

		client := New(server.URL, "")
		_, err := client.GenerateSpecialtyIcon(context.Background(), "Cardiologia")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty url")
	})
}
