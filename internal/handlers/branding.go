package handlers

import (
	"github.com/gofiber/fiber/v3"

	"tigertrade/internal/config"
)

// MergeBranding adds site branding from config to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	return data
}
