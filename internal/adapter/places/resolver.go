package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shefazol/ordering/internal/core/domain"
	"github.com/shefazol/ordering/internal/port"
)

const defaultSearchEndpoint = "https://nominatim.openstreetmap.org/search"

// HTTPResolver validates free-text addresses against a geocoding API,
// restricted to a single country. An answer with no candidates means the
// customer never picked a real address and maps to port.ErrNoSelection;
// transport failures bubble up so the caller can apply its fallback policy.
type HTTPResolver struct {
	endpoint    string
	countryCode string
	userAgent   string
	httpClient  *http.Client
	retry       retryConfig
}

func NewHTTPResolver(userAgent string) *HTTPResolver {
	return &HTTPResolver{
		endpoint:    defaultSearchEndpoint,
		countryCode: "il",
		userAgent:   userAgent,
		httpClient: &http.Client{
			Timeout: 8 * time.Second,
		},
		retry: defaultRetryConfig(),
	}
}

// WithEndpoint overrides the search endpoint, mainly for tests.
func (r *HTTPResolver) WithEndpoint(endpoint string) *HTTPResolver {
	r.endpoint = endpoint
	return r
}

type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (r *HTTPResolver) Resolve(ctx context.Context, rawText string) (*domain.ResolvedAddress, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return nil, port.ErrNoSelection
	}

	results, err := retryWithBackoff(ctx, r.retry, func() ([]searchResult, error) {
		return r.search(ctx, rawText)
	})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, port.ErrNoSelection
	}

	candidate := results[0]
	resolved := &domain.ResolvedAddress{
		FormattedAddress: candidate.DisplayName,
	}

	// Candidates can come back without usable coordinates; that is a
	// warning condition for the caller, not a rejection.
	if lat, latErr := strconv.ParseFloat(candidate.Lat, 64); latErr == nil {
		if lng, lngErr := strconv.ParseFloat(candidate.Lon, 64); lngErr == nil {
			resolved.Lat = &lat
			resolved.Lng = &lng
		}
	}

	return resolved, nil
}

func (r *HTTPResolver) search(ctx context.Context, rawText string) ([]searchResult, error) {
	query := url.Values{}
	query.Set("q", rawText)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("countrycodes", r.countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("address search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("address search returned %d: %s", resp.StatusCode, detail)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return results, nil
}
