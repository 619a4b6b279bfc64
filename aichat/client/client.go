package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"aichat/aichat/types"
)

// Client is the typed HTTP client for the chat service. Login stores the
// bearer token used by all subsequent calls.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Login(ctx context.Context, username string) (*types.LoginResponse, error) {
	var resp types.LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", types.LoginRequest{Username: username}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// Me fetches the session state for the stored token's user.
func (c *Client) Me(ctx context.Context) (*types.UserInfo, error) {
	var user types.UserInfo
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Models(ctx context.Context) ([]types.ModelInfo, error) {
	var models []types.ModelInfo
	if err := c.doJSON(ctx, http.MethodGet, "/models/", nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}

func (c *Client) Send(ctx context.Context, modelTag, prompt, userID string) (*types.SendResponse, error) {
	var resp types.SendResponse
	req := types.SendRequest{ModelTag: modelTag, Prompt: prompt, UserID: userID}
	if err := c.doJSON(ctx, http.MethodPost, "/chat/send", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) History(ctx context.Context, userID string, limit int) ([]types.Message, error) {
	q := url.Values{}
	q.Set("user_id", userID)
	q.Set("limit", strconv.Itoa(limit))
	var msgs []types.Message
	if err := c.doJSON(ctx, http.MethodGet, "/chat/history?"+q.Encode(), nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) Edit(ctx context.Context, messageID, newContent, modelTag, userID string) (*types.EditResponse, error) {
	var resp types.EditResponse
	req := types.EditRequest{MessageID: messageID, NewContent: newContent, ModelTag: modelTag, UserID: userID}
	if err := c.doJSON(ctx, http.MethodPost, "/chat/edit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Regenerate(ctx context.Context, messageID, modelTag, userID string) (*types.Message, error) {
	var msg types.Message
	req := types.RegenerateRequest{MessageID: messageID, ModelTag: modelTag, UserID: userID}
	if err := c.doJSON(ctx, http.MethodPost, "/chat/regenerate", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) Delete(ctx context.Context, messageID, userID string) (bool, error) {
	var resp types.DeleteResponse
	req := types.DeleteRequest{MessageID: messageID, UserID: userID}
	if err := c.doJSON(ctx, http.MethodPost, "/chat/delete", req, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(jsonBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	r, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(r.Body, 4096))
		return fmt.Errorf("bad status %d: %s", r.StatusCode, bytes.TrimSpace(msg))
	}
	if out != nil {
		return json.NewDecoder(r.Body).Decode(out)
	}
	return nil
}
