// Package http provides an HTTP implementation of pokedex.API backed by the
// public PokéAPI REST service.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/pokedex"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the PokéAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// userAgent identifies the client to the API operators.
const userAgent = "pokedex (+https://github.com/fwojciec/pokedex)"

// Ensure Client implements pokedex.API at compile time.
var _ pokedex.API = (*Client)(nil)

// Client reads species, Pokémon, evolution chain and type records from the
// PokéAPI. It is safe for concurrent use.
type Client struct {
	baseURL  string
	timeout  time.Duration
	retryMax int
	client   *retryablehttp.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the timeout for each HTTP attempt.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRetryMax sets how many times a failed request is retried.
// Defaults to 0: a failure is returned immediately.
func WithRetryMax(n int) Option {
	return func(c *Client) {
		c.retryMax = max(n, 0)
	}
}

// NewClient creates a new PokéAPI client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = c.retryMax
	rc.RetryWaitMin = 250 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.HTTPClient.Timeout = c.timeout
	c.client = rc

	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListSpecies returns the first limit species. A non-positive limit selects
// pokedex.DefaultSpeciesLimit.
func (c *Client) ListSpecies(ctx context.Context, limit int) ([]pokedex.NamedResource, error) {
	if limit <= 0 {
		limit = pokedex.DefaultSpeciesLimit
	}
	doc, err := c.get(ctx, c.baseURL+"/pokemon-species?limit="+strconv.Itoa(limit))
	if err != nil {
		return nil, err
	}
	return decodeNamedResources(doc.Get("results")), nil
}

// FetchSpecies retrieves a species by URL or name.
func (c *Client) FetchSpecies(ctx context.Context, ref string) (*pokedex.Species, error) {
	u := c.resolve("pokemon-species", ref)
	doc, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	return decodeSpecies(doc, u)
}

// FetchPokemon retrieves a Pokémon by URL, name or national dex number.
func (c *Client) FetchPokemon(ctx context.Context, ref string) (*pokedex.Pokemon, error) {
	u := c.resolve("pokemon", ref)
	doc, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	return decodePokemon(doc, u)
}

// FetchEvolutionChain retrieves an evolution chain by URL or ID.
func (c *Client) FetchEvolutionChain(ctx context.Context, ref string) (*pokedex.EvolutionChain, error) {
	u := c.resolve("evolution-chain", ref)
	doc, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	return decodeEvolutionChain(doc, u)
}

// ListTypes returns every elemental type except the non-playable
// "unknown" and "shadow" types.
func (c *Client) ListTypes(ctx context.Context) ([]string, error) {
	doc, err := c.get(ctx, c.baseURL+"/type?limit=100")
	if err != nil {
		return nil, err
	}
	var types []string
	for _, r := range decodeNamedResources(doc.Get("results")) {
		if r.Name == "unknown" || r.Name == "shadow" {
			continue
		}
		types = append(types, r.Name)
	}
	return types, nil
}

// resolve turns a bare name or ID into a resource URL under kind.
// Absolute URLs are returned unchanged.
func (c *Client) resolve(kind, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return c.baseURL + "/" + kind + "/" + url.PathEscape(strings.ToLower(strings.TrimSpace(ref))) + "/"
}

// get performs a GET request and returns the parsed JSON document.
func (c *Client) get(ctx context.Context, u string) (gjson.Result, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return gjson.Result{}, pokedex.Errorf(pokedex.EINVALID, "invalid request URL %q", u)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return gjson.Result{}, ctxErr
		}
		return gjson.Result{}, pokedex.Errorf(pokedex.EUNAVAILABLE, "GET %s: %v", u, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return gjson.Result{}, pokedex.Errorf(pokedex.ENOTFOUND, "resource not found: %s", u)
	case resp.StatusCode != http.StatusOK:
		return gjson.Result{}, pokedex.Errorf(pokedex.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, u)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, pokedex.Errorf(pokedex.EUNAVAILABLE, "read %s: %v", u, err)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, pokedex.Errorf(pokedex.EINVALID, "malformed JSON from %s", u)
	}

	return gjson.ParseBytes(body), nil
}

// String implements fmt.Stringer for debug output.
func (c *Client) String() string {
	return fmt.Sprintf("pokeapi(%s)", c.baseURL)
}
