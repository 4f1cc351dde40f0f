// Package api is the single point of HTTP egress: a transport shim over the
// portal backend, grouped by role. It holds no business logic.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/scut1er/studentportal/core"
)

// TokenSource yields the current bearer token, or "" for anonymous calls.
type TokenSource func() string

type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     core.Logger
}

func NewClient(baseURL string, token TokenSource, logger core.Logger) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: core.Conf.GetDuration("requestTimeout")},
		token:   token,
		log:     logger,
	}
}

// Role-partitioned method groups.

func (c *Client) Auth() *AuthAPI       { return &AuthAPI{c} }
func (c *Client) Student() *StudentAPI { return &StudentAPI{c} }
func (c *Client) Teacher() *TeacherAPI { return &TeacherAPI{c} }
func (c *Client) Admin() *AdminAPI     { return &AdminAPI{c} }

// do performs a single fire-and-await call: no retries, no queuing.
// A bearer token is attached whenever one is present; the decoded body lands
// in `out` on 2xx, any other outcome becomes an *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return errors.Wrap(err, "api.Encode")
		}
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, &reqBody)
	if err != nil {
		return errors.Wrap(err, "api.NewRequest")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "api.ReadAll")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.log != nil {
			c.log.Debug("api: "+method+" "+path+" failed", resp.StatusCode)
		}
		return newError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrapf(err, "api.Unmarshal(%s %s)", method, path)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
