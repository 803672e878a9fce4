package images

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/snapseek/backend/internal/domain/providers"
	"github.com/snapseek/backend/pkg/config"
)

// NewImageProvider creates the configured image provider. Without an access
// key the mock provider is used so development setups still work.
func NewImageProvider(cfg *config.UnsplashConfig) providers.ImageProvider {
	if cfg.Provider == "mock" || cfg.AccessKey == "" {
		log.Warn().Msg("no Unsplash access key configured; using mock image provider")
		return NewMockImageProvider()
	}

	return NewUnsplashProviderWithOptions(
		cfg.AccessKey,
		cfg.BaseURL,
		cfg.PageSize,
		&http.Client{Timeout: cfg.Timeout},
	)
}
