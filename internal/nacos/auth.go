package nacos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Login exchanges credentials for an access token.
// The token is valid for LoginResult.TTL and is never refreshed.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	const op = "login"

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	data, err := c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   loginPath,
		form:   form,
	})
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, NewDecodeError(op, err)
	}
	if result.AccessToken == "" {
		return nil, NewDecodeError(op, errMissingToken)
	}
	if result.Username == "" {
		result.Username = username
	}

	return &result, nil
}
