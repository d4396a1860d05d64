package app

import (
	panHTTP "github.com/fintechx/panvault/internal/pan/http"
	panService "github.com/fintechx/panvault/internal/pan/service"
)

// Validator returns the PAN validator service.
func (c *Container) Validator() panService.Validator {
	c.validatorInit.Do(func() {
		c.validator = panService.NewValidator()
	})
	return c.validator
}

// Masker returns the PAN masker service with the configured default
// visibility policy.
func (c *Container) Masker() panService.Masker {
	c.maskerInit.Do(func() {
		c.masker = panService.NewMasker(
			c.config.MaskVisiblePrefix,
			c.config.MaskVisibleSuffix,
		)
	})
	return c.masker
}

// PANHandler creates the PAN HTTP handler.
func (c *Container) PANHandler() (*panHTTP.PANHandler, error) {
	return panHTTP.NewPANHandler(c.Validator(), c.Masker(), c.Logger()), nil
}
