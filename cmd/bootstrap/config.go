package bootstrap

import (
	"autoparts-pos/internal/domain/pricing"
	"autoparts-pos/internal/pkg/config"
	"autoparts-pos/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewTaxRate,
	),
)

// NewTaxRate parses TAX_RATE once; both price calculators share the result.
func NewTaxRate(cfg config.Config) (pricing.TaxRate, error) {
	rate, err := pricing.ParseTaxRate(cfg.Tax.Rate)
	if err != nil {
		return pricing.TaxRate{}, errs.Wrapf(err, "invalid TAX_RATE %q", cfg.Tax.Rate)
	}
	return rate, nil
}
