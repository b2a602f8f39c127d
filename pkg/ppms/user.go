package ppms

import (
	"context"
	"net/url"
	"strconv"
)

// GetUser looks a user up by login. ErrNotFound when the facility has no such login.
func (c *Client) GetUser(ctx context.Context, login string) (*User, error) {
	form := url.Values{}
	form.Set("action", "getuser")
	form.Set("login", login)
	form.Set("format", "json")

	var user User
	body, err := c.Post(ctx, apiPUMAPI, form)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, ErrNotFound
	}
	if err := decode(body, form, &user); err != nil {
		return nil, err
	}
	if user.Login == "" {
		user.Login = login
	}
	return &user, nil
}

// GetUserByID returns nil, nil when the id is unknown.
func (c *Client) GetUserByID(ctx context.Context, userID, coreID int64) (*User, error) {
	form := url.Values{}
	form.Set("action", "GetUserDetailsById")
	form.Set("outformat", "json")
	form.Set("checkUserId", strconv.FormatInt(userID, 10))
	form.Set("coreid", strconv.FormatInt(coreID, 10))

	var users []User
	if err := c.PostJSON(ctx, apiAPI2, form, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	if users[0].ID == 0 {
		users[0].ID = Int(userID)
	}
	return &users[0], nil
}

// ListUsers returns the bulk user report.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	form := url.Values{}
	form.Set("action", c.opts.UsersQuery)
	form.Set("outformat", "json")

	var users []User
	if err := c.PostJSON(ctx, apiAPI2, form, &users); err != nil {
		return nil, err
	}
	return users, nil
}
