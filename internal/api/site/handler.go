package siteapi

import (
	"net/http"

	"quotedrop/config"
	"quotedrop/internal/domain/site"

	"github.com/gin-gonic/gin"
)

// GET /site
func GetSiteConfig(c *gin.Context) {
	c.JSON(http.StatusOK, site.Default(config.AppURL))
}
