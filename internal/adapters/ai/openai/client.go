package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"petvizor/internal/domain/chat"
	"petvizor/internal/platform/httpclient"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Constantes del contrato externo observable.
const (
	maxTokens   = 1000
	temperature = 0.7
)

// systemPrompt es fijo: el asistente solo responde sobre cuidado de mascotas.
const systemPrompt = "Ты — ИИ-ассистент Petvizor, эксперт по уходу за домашними животными. " +
	"Отвечай кратко и по делу на русском языке. Отвечай только на вопросы о здоровье, " +
	"питании и содержании домашних животных. При серьёзных симптомах всегда советуй " +
	"обратиться к ветеринару."

var ErrUpstream = errors.New("openai upstream error")

type Config struct {
	APIKey  string
	Model   string
	BaseURL string

	Timeout   time.Duration
	Transport http.RoundTripper // inyectable para tests
}

type Client struct {
	http *httpclient.Client

	baseURL string
	apiKey  string
	model   string
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var hc *httpclient.Client
	if cfg.Transport != nil {
		hc = httpclient.NewWithTransport(timeout, cfg.Transport)
	} else {
		hc = httpclient.New(timeout)
	}

	return &Client{
		http:    hc,
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   strings.TrimSpace(cfg.Model),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete implementa chat.Completer: una llamada, sin reintentos.
func (c *Client) Complete(ctx context.Context, userText string) (chat.Completion, error) {
	if !c.IsConfigured() {
		return chat.Completion{}, chat.ErrNotConfigured
	}

	req := completionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	var resp completionResponse
	err := c.http.DoJSON(ctx, http.MethodPost, c.baseURL+"/chat/completions", headers, req, &resp)
	if err != nil {
		return chat.Completion{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return chat.Completion{}, chat.ErrEmptyReply
	}

	model := strings.TrimSpace(resp.Model)
	if model == "" {
		model = c.model
	}

	return chat.Completion{
		Text:  strings.TrimSpace(resp.Choices[0].Message.Content),
		Model: model,
	}, nil
}
