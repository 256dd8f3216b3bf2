package matrixapi

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/c360studio/gorcmap/config"
	"github.com/c360studio/gorcmap/correlation"
)

// Config holds configuration for the matrix-api component.
type Config struct {
	// Addr is the listen address.
	Addr string `validate:"required"`

	ReadTimeout     time.Duration `validate:"gte=0"`
	WriteTimeout    time.Duration `validate:"gte=0"`
	ShutdownTimeout time.Duration `validate:"gte=0"`

	// CORSOrigins lists origins allowed on /api/*. "*" allows any origin;
	// an empty list disables CORS headers.
	CORSOrigins []string `validate:"dive,required"`

	// DefaultTaxonomy is used when a request carries no taxonomy parameter.
	DefaultTaxonomy correlation.TaxonomyID `validate:"oneof=original revised"`
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            ":5000",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		CORSOrigins:     []string{"*"},
		DefaultTaxonomy: correlation.TaxonomyOriginal,
	}
}

// ConfigFrom derives the component configuration from the application config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		CORSOrigins:     cfg.Server.CORSOrigins,
		DefaultTaxonomy: correlation.TaxonomyID(cfg.Export.DefaultTaxonomy),
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate verifies the configuration is consistent.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("matrix-api config: %w", err)
	}
	return nil
}
