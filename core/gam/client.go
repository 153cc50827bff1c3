package gam

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"gam-provisioner/core/apperr"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2/google"
)

// Scope is the OAuth2 scope of the Ad Manager API.
const Scope = "https://www.googleapis.com/auth/dfp"

const backend = "ad_manager"

// Client sends SOAP calls to the Ad Manager API.
type Client struct {
	cfg  Config
	http *resty.Client
}

// NewClient authenticates with the service account key in cfg.KeyFile.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	key, err := os.ReadFile(cfg.KeyFile)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeConfiguration, err, "read ad manager key file")
	}

	jwt, err := google.JWTConfigFromJSON(key, Scope)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeConfiguration, err, "parse ad manager key file")
	}

	return NewClientWithHTTP(cfg, jwt.Client(ctx)), nil
}

// NewClientWithHTTP builds a client on top of an already authenticated HTTP client.
func NewClientWithHTTP(cfg Config, hc *http.Client) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}

	r := resty.NewWithClient(hc).
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")+"/"+cfg.APIVersion).
		SetTimeout(time.Duration(timeout)*time.Second).
		SetHeader("Content-Type", "text/xml; charset=utf-8").
		SetHeader("SOAPAction", `""`)

	return &Client{cfg: cfg, http: r}
}

// Namespace is the XML namespace of the configured API version.
func (c *Client) Namespace() string {
	return "https://www.google.com/apis/ads/publisher/" + c.cfg.APIVersion
}

// call posts op to service and decodes the body content into out.
func (c *Client) call(ctx context.Context, service string, op operation, out any) error {
	payload, err := xml.Marshal(newEnvelope(c.Namespace(), c.cfg.NetworkCode, c.cfg.ApplicationName, op))
	if err != nil {
		return fmt.Errorf("failed to encode %s.%s: %w", service, op.name, err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(append([]byte(xml.Header), payload...)).
		Post("/" + service)
	if err != nil {
		return apperr.Wrap(apperr.CodeRemoteAPI, err, service+"."+op.name)
	}

	return decodeResponse(resp.StatusCode(), resp.Body(), out)
}

func decodeResponse(status int, body []byte, out any) error {
	var env responseEnvelope
	if err := xml.Unmarshal(body, &env); err != nil {
		if status >= http.StatusBadRequest {
			return apperr.Remote(backend, strconv.Itoa(status), http.StatusText(status))
		}
		return apperr.Wrap(apperr.CodeRemoteAPI, err, "decode soap response")
	}

	if f := env.Body.Fault; f != nil {
		return apperr.Remote(backend, f.Code, f.message())
	}
	if status >= http.StatusBadRequest {
		return apperr.Remote(backend, strconv.Itoa(status), http.StatusText(status))
	}

	if out == nil {
		return nil
	}
	if err := xml.Unmarshal(env.Body.Content, out); err != nil {
		return apperr.Wrap(apperr.CodeRemoteAPI, err, "decode soap body")
	}
	return nil
}
