// Package api is the typed HTTP client of the CLI. It holds no business
// logic: requests go out, JSON comes back.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the Héritage Partagé server. UserID, when set, is sent
// as the X-User-Id identity header on every request.
type Client struct {
	BaseURL string
	UserID  int64

	http *http.Client
}

// New creates a client for the given server URL.
func New(serverURL string, userID int64) *Client {
	return &Client{
		BaseURL: serverURL,
		UserID:  userID,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Wire shapes, mirroring the server DTOs.

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type Photo struct {
	ID       int64 `json:"id"`
	ItemID   int64 `json:"itemId"`
	Position int   `json:"position"`
}

type Item struct {
	ID             int64    `json:"id"`
	Number         int      `json:"number"`
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Value          *float64 `json:"value"`
	DeletedAt      *string  `json:"deletedAt,omitempty"`
	DeletedByName  *string  `json:"deletedByName,omitempty"`
	Photos         []Photo  `json:"photos"`
	Lovers         []string `json:"lovers,omitempty"`
	LoveCount      int      `json:"loveCount,omitempty"`
	UserPreference *string  `json:"userPreference,omitempty"`
}

type Comment struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
	User      struct {
		Name string `json:"name"`
	} `json:"user"`
}

type Preference struct {
	ID    int64  `json:"id"`
	Level string `json:"level"`
}

type RepartitionStat struct {
	UserName       string  `json:"userName"`
	UserRole       string  `json:"userRole"`
	ItemCount      int     `json:"itemCount"`
	ItemsWithValue int     `json:"itemsWithValue"`
	TotalValue     float64 `json:"totalValue"`
	MaybeCount     int     `json:"maybeCount"`
	MaybeValue     float64 `json:"maybeValue"`
}

type apiError struct {
	Message string `json:"message"`
}

// do runs one request and decodes the JSON response into out (when non-nil).
func (c *Client) do(method, path string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserID > 0 {
		req.Header.Set("X-User-Id", strconv.FormatInt(c.UserID, 10))
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var ae apiError
		_ = json.NewDecoder(resp.Body).Decode(&ae)
		if ae.Message != "" {
			return fmt.Errorf("serveur: %s (HTTP %d)", ae.Message, resp.StatusCode)
		}
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Users() ([]User, error) {
	var users []User
	err := c.do(http.MethodGet, "/api/users", nil, &users)
	return users, err
}

func (c *Client) CreateUser(name, role string) (*User, error) {
	var u User
	err := c.do(http.MethodPost, "/api/users", map[string]string{"name": name, "role": role}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Items(filter string, userID int64, showDeleted bool) ([]Item, error) {
	q := url.Values{}
	if filter != "" {
		q.Set("filter", filter)
	}
	if userID > 0 {
		q.Set("userId", strconv.FormatInt(userID, 10))
	}
	if !showDeleted {
		q.Set("showDeleted", "false")
	}
	path := "/api/items"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var items []Item
	err := c.do(http.MethodGet, path, nil, &items)
	return items, err
}

func (c *Client) Item(id int64) (*Item, error) {
	var it Item
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/items/%d", id), nil, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (c *Client) CreateItem(photoDataURL string) (*Item, error) {
	var it Item
	err := c.do(http.MethodPost, "/api/items", map[string]string{"photo": photoDataURL}, &it)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (c *Client) AddPhoto(itemID int64, photoDataURL string) (*Photo, error) {
	var p Photo
	err := c.do(http.MethodPost, fmt.Sprintf("/api/items/%d/photos", itemID),
		map[string]string{"photo": photoDataURL}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) SetPreference(itemID int64, level string) (*Preference, error) {
	var p Preference
	err := c.do(http.MethodPost, fmt.Sprintf("/api/items/%d/preferences", itemID),
		map[string]string{"level": level}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Comments(itemID int64) ([]Comment, error) {
	var comments []Comment
	err := c.do(http.MethodGet, fmt.Sprintf("/api/items/%d/comments", itemID), nil, &comments)
	return comments, err
}

func (c *Client) AddComment(itemID int64, text string) (*Comment, error) {
	var cm Comment
	err := c.do(http.MethodPost, fmt.Sprintf("/api/items/%d/comments", itemID),
		map[string]string{"text": text}, &cm)
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

func (c *Client) Repartition() ([]RepartitionStat, error) {
	var stats []RepartitionStat
	err := c.do(http.MethodGet, "/api/stats/repartition", nil, &stats)
	return stats, err
}
