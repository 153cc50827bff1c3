package sape

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gam-provisioner/core/apperr"
	"gam-provisioner/core/utils"

	"github.com/go-resty/resty/v2"
	"github.com/kolo/xmlrpc"
)

const (
	backend = "sape"

	loginMethod = "sape.login"

	// faultSessionExpired is returned when the session cookie is no longer valid.
	faultSessionExpired = 667
)

// Client calls the Sape XML-RPC API. The session cookie set by sape.login is kept in
// the resty cookie jar and sent with every later call.
type Client struct {
	cfg  Config
	http *resty.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	r := resty.New().
		SetTimeout(time.Duration(timeout)*time.Second).
		SetHeader("Content-Type", "text/xml").
		SetHeader("User-Agent", cfg.UserAgent)

	return &Client{cfg: cfg, http: r}
}

// SiteID is the configured site.
func (c *Client) SiteID() int64 {
	return c.cfg.SiteID
}

// Login opens a session and returns the user id. A zero id means the login was refused.
func (c *Client) Login(ctx context.Context) (int64, error) {
	var userID any
	if err := c.call(ctx, loginMethod, []any{c.cfg.Login, c.cfg.Token}, &userID); err != nil {
		return 0, err
	}
	return utils.ToInt64(userID), nil
}

type outcome int

const (
	outcomeOK outcome = iota
	outcomeSessionExpired
	outcomeFault
)

// call performs method and decodes its result into out. A session-expired fault triggers
// one re-login and one resubmit; login itself is never retried.
func (c *Client) call(ctx context.Context, method string, args []any, out any) error {
	retried := method == loginMethod

	for {
		resp, err := c.post(ctx, method, args)
		if err != nil {
			return err
		}

		result, fault := classify(resp)
		switch result {
		case outcomeOK:
			if out == nil {
				return nil
			}
			if err := resp.Unmarshal(out); err != nil {
				return apperr.Wrap(apperr.CodeRemoteAPI, err, "decode "+method+" response")
			}
			return nil

		case outcomeSessionExpired:
			if retried {
				return remoteFault(fault)
			}
			retried = true

			userID, err := c.Login(ctx)
			if err != nil {
				return err
			}
			if userID == 0 {
				return remoteFault(fault)
			}

		default:
			return remoteFault(fault)
		}
	}
}

func (c *Client) post(ctx context.Context, method string, args []any) (xmlrpc.Response, error) {
	body, err := xmlrpc.EncodeMethodCall(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", method, err)
	}

	url := c.cfg.URL
	if strings.HasPrefix(method, "rtb.") {
		url += "?rtb=1"
	}

	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(url)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeRemoteAPI, err, method)
	}
	if resp.IsError() {
		return nil, apperr.Remote(backend, strconv.Itoa(resp.StatusCode()), method+": "+resp.Status())
	}

	return xmlrpc.Response(resp.Body()), nil
}

func classify(resp xmlrpc.Response) (outcome, xmlrpc.FaultError) {
	err := resp.Err()
	if err == nil {
		return outcomeOK, xmlrpc.FaultError{}
	}

	var fault xmlrpc.FaultError
	if !errors.As(err, &fault) {
		return outcomeFault, xmlrpc.FaultError{String: err.Error()}
	}
	if fault.Code == faultSessionExpired {
		return outcomeSessionExpired, fault
	}
	return outcomeFault, fault
}

func remoteFault(f xmlrpc.FaultError) error {
	return apperr.Remote(backend, strconv.Itoa(f.Code), f.String)
}
