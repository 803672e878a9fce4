package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/snapseek/backend/internal/domain/entities"
	"github.com/snapseek/backend/internal/domain/providers"
	apperrors "github.com/snapseek/backend/pkg/errors"
)

const (
	unsplashBaseURL    = "https://api.unsplash.com"
	searchPhotosPath   = "/search/photos"
	defaultPageSize    = 24
	defaultAltText     = "image"
	defaultHTTPTimeout = 8 * time.Second
)

// UnsplashProvider implements the ImageProvider using the Unsplash search
// API. Every Search is a live roundtrip; nothing is cached and a failed call
// is never retried here.
type UnsplashProvider struct {
	accessKey  string
	httpClient *http.Client
	baseURL    string
	pageSize   int
}

// NewUnsplashProvider creates a new Unsplash provider.
func NewUnsplashProvider(accessKey string) providers.ImageProvider {
	return NewUnsplashProviderWithOptions(accessKey, unsplashBaseURL, defaultPageSize, nil)
}

// NewUnsplashProviderWithOptions allows overriding base URL, page size and
// HTTP client (used for tests).
func NewUnsplashProviderWithOptions(accessKey, baseURL string, pageSize int, httpClient *http.Client) providers.ImageProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = unsplashBaseURL
	}
	if pageSize <= 0 || pageSize > defaultPageSize {
		pageSize = defaultPageSize
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &UnsplashProvider{
		accessKey:  accessKey,
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		pageSize:   pageSize,
	}
}

type unsplashPhoto struct {
	ID             string `json:"id"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Small string `json:"small"`
	} `json:"urls"`
}

type unsplashSearchResponse struct {
	Results []unsplashPhoto `json:"results"`
}

// Search issues one call to the Unsplash search endpoint and maps the
// results. Any transport, status or decoding failure surfaces as an
// external provider error.
func (p *UnsplashProvider) Search(ctx context.Context, term string) ([]entities.Image, error) {
	params := url.Values{}
	params.Set("query", term)
	params.Set("per_page", strconv.Itoa(p.pageSize))

	reqURL := fmt.Sprintf("%s%s?%s", p.baseURL, searchPhotosPath, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to build image search request", err)
	}
	req.Header.Set("Authorization", "Client-ID "+p.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("image provider request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, apperrors.NewExternalError("image provider rejected credentials", fmt.Errorf("status %d", resp.StatusCode))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewExternalError("image provider returned an error", fmt.Errorf("status %d", resp.StatusCode))
	}

	var payload unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewExternalError("failed to decode image provider response", err)
	}

	images := make([]entities.Image, 0, len(payload.Results))
	for _, photo := range payload.Results {
		if len(images) == p.pageSize {
			break
		}
		alt := photo.AltDescription
		if alt == "" {
			alt = defaultAltText
		}
		images = append(images, entities.Image{
			ID:           photo.ID,
			ThumbnailURL: photo.URLs.Small,
			AltText:      alt,
		})
	}

	return images, nil
}
