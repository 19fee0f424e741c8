package mock

import (
	"context"
	"errors"
	"sync"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
)

// ChatModel is a scripted language model that records every request.
type ChatModel struct {
	mu        sync.Mutex
	reply     string
	err       error
	available bool
	requests  []adapter.ChatRequest
}

func NewChatModel() *ChatModel {
	return &ChatModel{reply: "Tutto procede secondo i piani.", available: true}
}

func (c *ChatModel) Complete(_ context.Context, request adapter.ChatRequest) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, request)
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func (c *ChatModel) IsAvailable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.available
}

func (c *ChatModel) SetReply(reply string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reply = reply
}

func (c *ChatModel) SetFailure(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = errors.New(message)
}

func (c *ChatModel) SetAvailable(available bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.available = available
}

// LastRequest returns the most recent request, or false when none was made.
func (c *ChatModel) LastRequest() (adapter.ChatRequest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.requests) == 0 {
		return adapter.ChatRequest{}, false
	}
	return c.requests[len(c.requests)-1], true
}

func (c *ChatModel) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reply = "Tutto procede secondo i piani."
	c.err = nil
	c.available = true
	c.requests = nil
}
