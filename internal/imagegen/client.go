// Package imagegen is the client for the external image-generation service
// that illustrates specialties and news items.
package imagegen

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client calls the image-generation HTTP API.
type Client struct {
	http *resty.Client
}

// New builds a Client for the given base URL. apiKey may be empty when the
// upstream service is unauthenticated.
func New(baseURL, apiKey string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	if apiKey != "" {
		c.SetAuthToken(apiKey)
	}
	return &Client{http: c}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	URL string `json:"url"`
}

// GenerateSpecialtyIcon returns an icon URL for a medical specialty.
func (c *Client) GenerateSpecialtyIcon(ctx context.Context, name string) (string, error) {
	prompt := fmt.Sprintf("ícone minimalista para a especialidade médica %s, fundo claro", name)
	return c.generate(ctx, prompt)
}

// GenerateNewsImage returns an illustration URL for a news headline.
func (c *Client) GenerateNewsImage(ctx context.Context, title, category string) (string, error) {
	prompt := fmt.Sprintf("ilustração editorial sobre %s, categoria %s", title, category)
	return c.generate(ctx, prompt)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	var out generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(generateRequest{Prompt: prompt}).
		SetResult(&out).
		Post("/v1/images")
	if err != nil {
		return "", fmt.Errorf("image service: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("image service: unexpected status %d", resp.StatusCode())
	}
	if out.URL == "" {
		return "", fmt.Errorf("image service: empty url in response")
	}
	return out.URL, nil
}
