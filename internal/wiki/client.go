// Copyright © 2026 Michael Klier chi@chimeric.de
// SPDX-License-Identifier: MIT

package wiki

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/rpc"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/kolo/xmlrpc"
)

const (
	// endpointPath is where DokuWiki serves its XML-RPC interface.
	endpointPath = "/lib/exe/xmlrpc.php"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "dokuctl (+https://github.com/chimeric/dokuctl)"
)

// Config holds the connection parameters for a wiki.
type Config struct {
	// URL is the base URL of the wiki, without the endpoint path.
	URL string

	// User and Password authenticate against the remote endpoint. Both may
	// be empty for wikis that allow anonymous access.
	User     string
	Password string

	// Timeout bounds the reachability probe and each remote call.
	Timeout time.Duration

	// UserAgent identifies the client to the wiki.
	UserAgent string
}

// endpoint returns the full XML-RPC endpoint URL with credentials encoded as
// the u/p query parameters the DokuWiki interface expects.
func (cfg Config) endpoint() (string, error) {
	base := strings.TrimSuffix(cfg.URL, "/")

	u, err := url.Parse(base + endpointPath)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	if cfg.User != "" {
		q := url.Values{}
		q.Set("u", cfg.User)
		q.Set("p", cfg.Password)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// Client is a DokuWiki XML-RPC client. All methods return exactly the data
// returned by the remote interface. Remote faults surface as *Fault.
type Client struct {
	cfg Config
	rpc *xmlrpc.Client

	// Version is the DokuWiki version reported by the remote wiki during
	// the construction handshake.
	Version string
}

// userAgentTransport stamps the client User-Agent on every request.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(req)
}

// New constructs a Client. It performs one reachability check against the
// endpoint (failure yields *URLError) and one version handshake
// (dokuwiki.getVersion, a fault yields *Fault). Use these to catch bad user
// input before dispatching an operation.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	endpoint, err := cfg.endpoint()
	if err != nil {
		return nil, &URLError{URL: cfg.URL, Err: err}
	}

	if err := probe(ctx, cfg); err != nil {
		return nil, err
	}

	rpc, err := xmlrpc.NewClient(endpoint, &userAgentTransport{
		base: &http.Transport{
			ResponseHeaderTimeout: cfg.Timeout,
		},
		userAgent: cfg.UserAgent,
	})
	if err != nil {
		return nil, &URLError{URL: cfg.URL, Err: err}
	}

	c := &Client{cfg: cfg, rpc: rpc}

	if err := c.call("dokuwiki.getVersion", nil, &c.Version); err != nil {
		_ = rpc.Close()
		return nil, err
	}
	log.Debugf("connected to %s (%s)", cfg.URL, c.Version)

	return c, nil
}

// probe issues a bare GET against the endpoint so that an unreachable or
// misspelled URL fails fast instead of surfacing as an opaque RPC error.
func probe(ctx context.Context, cfg Config) error {
	target := strings.TrimSuffix(cfg.URL, "/") + endpointPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &URLError{URL: cfg.URL, Err: err}
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return &URLError{URL: cfg.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return &URLError{URL: cfg.URL, Err: fmt.Errorf("endpoint returned %s", resp.Status)}
	}

	return nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() error {
	return c.rpc.Close()
}

// faultRegex matches the string form of an XML-RPC fault,
// xmlrpc.FaultError's "Fault(code): string".
var faultRegex = regexp.MustCompile(`(?s)^Fault\((-?\d+)\): (.*)$`)

// call invokes one named remote procedure and unwraps XML-RPC faults into
// *Fault. A fault reaches us either as a FaultError or flattened to its
// string form by the rpc client machinery, so both shapes are handled.
func (c *Client) call(method string, args interface{}, reply interface{}) error {
	log.Debugf("calling %s", method)

	err := c.rpc.Call(method, args, reply)
	if err == nil {
		return nil
	}

	var fault xmlrpc.FaultError
	if errors.As(err, &fault) {
		return &Fault{Code: fault.Code, Message: fault.String}
	}

	var remote rpc.ServerError
	if errors.As(err, &remote) {
		if m := faultRegex.FindStringSubmatch(string(remote)); m != nil {
			code, _ := strconv.Atoi(m[1])
			return &Fault{Code: code, Message: m[2]}
		}
	}

	return fmt.Errorf("%s: %w", method, err)
}

func checkPageID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrPageID
	}
	return nil
}

// RPCVersionSupported returns the XML-RPC interface version reported by the
// remote wiki.
func (c *Client) RPCVersionSupported() (int, error) {
	var v int
	err := c.call("wiki.getRPCVersionSupported", nil, &v)
	return v, err
}

// Page returns the raw wiki text of a page. A non-zero rev selects that
// revision (see PageVersions), zero means the current one.
func (c *Client) Page(id string, rev int) (string, error) {
	if err := checkPageID(id); err != nil {
		return "", err
	}

	method, args := "wiki.getPage", []interface{}{id}
	if rev != 0 {
		method, args = "wiki.getPageVersion", []interface{}{id, rev}
	}

	var text string
	err := c.call(method, args, &text)
	return text, err
}

// PageHTML returns the rendered (X)HTML body of a page, optionally at a
// given revision.
func (c *Client) PageHTML(id string, rev int) (string, error) {
	if err := checkPageID(id); err != nil {
		return "", err
	}

	method, args := "wiki.getPageHTML", []interface{}{id}
	if rev != 0 {
		method, args = "wiki.getPageHTMLVersion", []interface{}{id, rev}
	}

	var html string
	err := c.call(method, args, &html)
	return html, err
}

// PageInfo returns information about a page, optionally at a given revision.
func (c *Client) PageInfo(id string, rev int) (PageInfo, error) {
	if err := checkPageID(id); err != nil {
		return PageInfo{}, err
	}

	method, args := "wiki.getPageInfo", []interface{}{id}
	if rev != 0 {
		method, args = "wiki.getPageInfoVersion", []interface{}{id, rev}
	}

	var info PageInfo
	err := c.call(method, args, &info)
	return info, err
}

// PageVersions returns the available revisions of a page, starting at the
// given offset into the history.
func (c *Client) PageVersions(id string, offset int) ([]PageVersion, error) {
	if err := checkPageID(id); err != nil {
		return nil, err
	}

	var versions []PageVersion
	err := c.call("wiki.getPageVersions", []interface{}{id, offset}, &versions)
	return versions, err
}

// PutPage stores raw wiki text as the new current revision of a page.
func (c *Client) PutPage(id string, text string, summary string, minor bool) error {
	if err := checkPageID(id); err != nil {
		return err
	}

	params := map[string]interface{}{
		"sum":   summary,
		"minor": minor,
	}
	return c.call("wiki.putPage", []interface{}{id, text, params}, nil)
}

// AllPages lists the ids of all pages of the remote wiki.
func (c *Client) AllPages() ([]string, error) {
	var pages []string
	err := c.call("wiki.getAllPages", nil, &pages)
	return pages, err
}

// Backlinks returns the ids of pages that link back to a page.
func (c *Client) Backlinks(id string) ([]string, error) {
	if err := checkPageID(id); err != nil {
		return nil, err
	}

	var pages []string
	err := c.call("wiki.getBackLinks", []interface{}{id}, &pages)
	return pages, err
}

// Links returns the links contained in a page.
func (c *Client) Links(id string) ([]Link, error) {
	if err := checkPageID(id); err != nil {
		return nil, err
	}

	var links []Link
	err := c.call("wiki.listLinks", []interface{}{id}, &links)
	return links, err
}

// RecentChanges returns the changes made to the wiki since the given UTC
// timestamp.
func (c *Client) RecentChanges(since int64) ([]Change, error) {
	var changes []Change
	err := c.call("wiki.getRecentChanges", []interface{}{since}, &changes)
	return changes, err
}

// AclCheck returns the caller's permission mask for a page.
func (c *Client) AclCheck(id string) (int, error) {
	if err := checkPageID(id); err != nil {
		return 0, err
	}

	var perms int
	err := c.call("wiki.aclCheck", []interface{}{id}, &perms)
	return perms, err
}
