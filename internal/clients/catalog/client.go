// Package catalog is the cache-first client for the remote creature catalog
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/KirkDiggler/dex-api/internal/clients/catalog Client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/KirkDiggler/dex-api/internal/entities/dex"
	"github.com/KirkDiggler/dex-api/internal/errors"
	"github.com/KirkDiggler/dex-api/internal/repositories/cache"
)

const (
	defaultBaseURL       = "https://pokeapi.co/api/v2/"
	defaultSpriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/"
	defaultHTTPTimeout   = 10 * time.Second
	defaultBurst         = 5

	// Cache key prefixes inside the species namespace
	recordPrefix  = "pokemon/"
	speciesPrefix = "pokemon-species/"
	chainPrefix   = "evolution-chain/"
	listKey       = "list/all"
)

// Client defines the catalog operations used by dex-api. Every document
// lookup consults the cache first and stores successful responses.
type Client interface {
	// Fetch returns the raw JSON document for a name in a namespace
	Fetch(ctx context.Context, ns dex.Namespace, name string) (json.RawMessage, error)

	// GetSpecies fetches one concrete record by identifier
	GetSpecies(ctx context.Context, name string) (*dex.SpeciesRecord, error)

	// GetSpeciesDetails fetches the species-level document that groups varieties
	GetSpeciesDetails(ctx context.Context, name string) (*dex.Species, error)

	// SafeFetchSpecies fetches a record, falling back to the species varieties
	// when the name is a species whose default record is not addressable
	SafeFetchSpecies(ctx context.Context, name string) (*dex.SpeciesRecord, error)

	// FetchEvolutionChain fetches and converts the evolution chain at url
	FetchEvolutionChain(ctx context.Context, url string) (*dex.EvolutionChain, error)

	// GetTypeRelation fetches the damage relations of a defending type
	GetTypeRelation(ctx context.Context, typeName string) (*dex.TypeRelation, error)

	GetMove(ctx context.Context, name string) (*dex.Move, error)
	GetAbility(ctx context.Context, name string) (*dex.Ability, error)
	GetItem(ctx context.Context, name string) (*dex.Item, error)

	// ListResources lists every entry of a namespace
	ListResources(ctx context.Context, ns dex.Namespace) (*dex.ResourceList, error)

	// GetSpeciesImage returns the sprite image of a record, cached on disk
	GetSpeciesImage(ctx context.Context, record *dex.SpeciesRecord) ([]byte, error)
}

// Cache is the subset of the cache store the client depends on
type Cache interface {
	Get(ctx context.Context, ns dex.Namespace, key string) (json.RawMessage, bool)
	Set(ctx context.Context, ns dex.Namespace, key string, value json.RawMessage)
	Delete(ctx context.Context, ns dex.Namespace, key string)
	GetOrFetchImage(ctx context.Context, id string, fetch cache.FetchFunc) ([]byte, error)
}

// Config contains configuration options for the catalog client.
type Config struct {
	// BaseURL of the catalog API (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// SpriteBaseURL is the directory sprites are fetched from by numeric id
	SpriteBaseURL string
	// HTTPTimeout bounds every network round trip (optional, defaults to 10 seconds)
	HTTPTimeout time.Duration
	// RequestsPerSecond caps outbound requests; zero or less disables limiting
	RequestsPerSecond float64
	// Burst is the limiter bucket size (optional, defaults to 5)
	Burst int
	// Cache is required
	Cache Cache
	// HTTPClient overrides the transport, mainly for tests
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.SpriteBaseURL == "" {
		cfg.SpriteBaseURL = defaultSpriteBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.Burst == 0 {
		cfg.Burst = defaultBurst
	}

	vb := errors.NewValidationBuilder()
	if cfg.Cache == nil {
		vb.RequiredField("Cache")
	}
	if !isAbsoluteURL(cfg.BaseURL) {
		vb.Fieldf("BaseURL", "must be an absolute url, got %q", cfg.BaseURL)
	}
	if !isAbsoluteURL(cfg.SpriteBaseURL) {
		vb.Fieldf("SpriteBaseURL", "must be an absolute url, got %q", cfg.SpriteBaseURL)
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if cfg.Burst < 0 {
		vb.Field("Burst", "must not be negative")
	}
	return vb.Build()
}

func isAbsoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

type client struct {
	baseURL       string
	spriteBaseURL string
	timeout       time.Duration
	httpClient    *http.Client
	limiter       *rate.Limiter
	cache         Cache
	tracer        trace.Tracer
	inflight      singleflight.Group
}

// New creates a new catalog client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/") + "/",
		spriteBaseURL: strings.TrimRight(cfg.SpriteBaseURL, "/") + "/",
		timeout:       cfg.HTTPTimeout,
		httpClient:    httpClient,
		limiter:       rate.NewLimiter(limit, cfg.Burst),
		cache:         cfg.Cache,
		tracer:        otel.Tracer("github.com/KirkDiggler/dex-api/internal/clients/catalog"),
	}, nil
}

// endpoint maps a document namespace to its catalog resource path
func endpoint(ns dex.Namespace) (string, bool) {
	switch ns {
	case dex.NamespaceSpecies:
		return "pokemon", true
	case dex.NamespaceMove:
		return "move", true
	case dex.NamespaceAbility:
		return "ability", true
	case dex.NamespaceItem:
		return "item", true
	case dex.NamespaceType:
		return "type", true
	default:
		return "", false
	}
}

func (c *client) resourceURL(resource, name string) string {
	return c.baseURL + resource + "/" + url.PathEscape(name) + "/"
}

func slugOrError(name string) (string, error) {
	slug := dex.NormalizeName(name)
	if slug == "" {
		return "", errors.InvalidArgument("name is required")
	}
	return slug, nil
}

func (c *client) Fetch(ctx context.Context, ns dex.Namespace, name string) (json.RawMessage, error) {
	resource, ok := endpoint(ns)
	if !ok {
		return nil, errors.InvalidArgumentf("namespace %q has no catalog documents", ns)
	}
	slug, err := slugOrError(name)
	if err != nil {
		return nil, err
	}

	key := slug
	if ns == dex.NamespaceSpecies {
		key = recordPrefix + slug
	}

	raw, err := fetchInto[json.RawMessage](ctx, c, ns, key, c.resourceURL(resource, slug))
	if err != nil {
		return nil, err
	}
	return *raw, nil
}

func (c *client) GetSpecies(ctx context.Context, name string) (*dex.SpeciesRecord, error) {
	slug, err := slugOrError(name)
	if err != nil {
		return nil, err
	}

	wire, err := fetchInto[pokemonResponse](ctx, c, dex.NamespaceSpecies, recordPrefix+slug,
		c.resourceURL("pokemon", slug))
	if err != nil {
		return nil, err
	}
	return convertRecord(wire), nil
}

func (c *client) GetSpeciesDetails(ctx context.Context, name string) (*dex.Species, error) {
	slug, err := slugOrError(name)
	if err != nil {
		return nil, err
	}

	wire, err := fetchInto[speciesResponse](ctx, c, dex.NamespaceSpecies, speciesPrefix+slug,
		c.resourceURL("pokemon-species", slug))
	if err != nil {
		return nil, err
	}
	return convertSpecies(wire), nil
}

func (c *client) FetchEvolutionChain(ctx context.Context, chainURL string) (*dex.EvolutionChain, error) {
	if strings.TrimSpace(chainURL) == "" {
		return nil, errors.InvalidArgument("evolution chain url is required")
	}
	// The url comes from a species document, so a malformed one is bad catalog data
	id, err := dex.ChainIDFromURL(chainURL)
	if err != nil {
		return nil, errors.CatalogDecode(err, "species document has an unusable evolution chain url")
	}

	// Only the id is taken from the url so a configured mirror is honoured.
	wire, err := fetchInto[evolutionChainResponse](ctx, c, dex.NamespaceSpecies,
		chainPrefix+strconv.Itoa(id), c.resourceURL("evolution-chain", strconv.Itoa(id)))
	if err != nil {
		return nil, err
	}
	if wire.Chain == nil || wire.Chain.Species.name() == "" {
		c.cache.Delete(ctx, dex.NamespaceSpecies, chainPrefix+strconv.Itoa(id))
		return nil, errors.CatalogDecode(fmt.Errorf("chain has no root species"),
			fmt.Sprintf("failed to decode evolution chain %d", id))
	}
	return convertChain(ctx, wire), nil
}

func (c *client) GetTypeRelation(ctx context.Context, typeName string) (*dex.TypeRelation, error) {
	slug, err := slugOrError(typeName)
	if err != nil {
		return nil, err
	}

	wire, err := fetchInto[typeResponse](ctx, c, dex.NamespaceType, slug, c.resourceURL("type", slug))
	if err != nil {
		return nil, err
	}
	return convertTypeRelation(slug, wire), nil
}

func (c *client) GetMove(ctx context.Context, name string) (*dex.Move, error) {
	slug, err := slugOrError(name)
	if err != nil {
		return nil, err
	}

	wire, err := fetchInto[moveResponse](ctx, c, dex.NamespaceMove, slug, c.resourceURL("move", slug))
	if err != nil {
		return nil, err
	}
	return convertMove(wire), nil
}

func (c *client) GetAbility(ctx context.Context, name string) (*dex.Ability, error) {
	slug, err := slugOrError(name)
	if err != nil {
		return nil, err
	}

	wire, err := fetchInto[abilityResponse](ctx, c, dex.NamespaceAbility, slug, c.resourceURL("ability", slug))
	if err != nil {
		return nil, err
	}
	return convertAbility(wire), nil
}

func (c *client) GetItem(ctx context.Context, name string) (*dex.Item, error) {
	slug, err := slugOrError(name)
	if err != nil {
		return nil, err
	}

	wire, err := fetchInto[itemResponse](ctx, c, dex.NamespaceItem, slug, c.resourceURL("item", slug))
	if err != nil {
		return nil, err
	}
	return convertItem(wire), nil
}

func (c *client) ListResources(ctx context.Context, ns dex.Namespace) (*dex.ResourceList, error) {
	resource, ok := endpoint(ns)
	if !ok {
		return nil, errors.InvalidArgumentf("namespace %q has no catalog documents", ns)
	}

	if raw, hit := c.cache.Get(ctx, ns, listKey); hit {
		var wire resourceListResponse
		if err := json.Unmarshal(raw, &wire); err == nil {
			return convertResourceList(&wire), nil
		}
		c.cache.Delete(ctx, ns, listKey)
	}

	// The catalog pages by default; a one entry probe reports the total.
	probeURL := c.baseURL + resource + "/?limit=1"
	body, err := c.get(ctx, probeURL)
	if err != nil {
		return nil, err
	}
	var probe resourceListResponse
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, errors.CatalogDecode(err, fmt.Sprintf("failed to decode %s list", resource))
	}

	limit := probe.Count
	if limit < 1 {
		limit = 1
	}
	wire, err := fetchInto[resourceListResponse](ctx, c, ns, listKey,
		c.baseURL+resource+"/?limit="+strconv.Itoa(limit))
	if err != nil {
		return nil, err
	}
	return convertResourceList(wire), nil
}

func (c *client) GetSpeciesImage(ctx context.Context, record *dex.SpeciesRecord) ([]byte, error) {
	if record == nil || record.ID <= 0 {
		return nil, errors.InvalidArgument("record with a numeric id is required")
	}

	id := record.NumericID()
	return c.cache.GetOrFetchImage(ctx, id, func(ctx context.Context) ([]byte, error) {
		return c.get(ctx, c.spriteBaseURL+id+".png")
	})
}

// fetchInto serves a document from the cache when it still decodes, and
// otherwise downloads it once per key, storing it only after it decodes.
func fetchInto[T any](ctx context.Context, c *client, ns dex.Namespace, key, docURL string) (*T, error) {
	decode := func(raw []byte) (*T, error) {
		var out T
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, errors.CatalogDecode(err, fmt.Sprintf("failed to decode %s %s", ns, key))
		}
		return &out, nil
	}

	if raw, ok := c.cache.Get(ctx, ns, key); ok {
		out, err := decode(raw)
		if err == nil {
			return out, nil
		}
		slog.WarnContext(ctx, "Dropping undecodable cache entry",
			"namespace", ns,
			"key", key,
			"error", err)
		c.cache.Delete(ctx, ns, key)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.CatalogNetwork(err, isTimeout(ctx, err), fmt.Sprintf("fetch of %s %s abandoned", ns, key))
	}

	// The shared download runs detached from any one caller; roundTrip still
	// bounds it with the client timeout
	shared := context.WithoutCancel(ctx)
	ch := c.inflight.DoChan(string(ns)+"|"+key, func() (any, error) {
		if raw, ok := c.cache.Get(shared, ns, key); ok {
			return raw, nil
		}

		body, err := c.get(shared, docURL)
		if err != nil {
			return nil, err
		}
		if _, err := decode(body); err != nil {
			return nil, err
		}
		c.cache.Set(shared, ns, key, body)
		return body, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return decode(res.Val.([]byte))
	case <-ctx.Done():
		err := ctx.Err()
		return nil, errors.CatalogNetwork(err, isTimeout(ctx, err), fmt.Sprintf("fetch of %s %s abandoned", ns, key))
	}
}
