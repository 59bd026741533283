package proposals

import (
	"errors"
	"net/http"
	"time"

	"quotedrop/database"
	"quotedrop/internal/domain/access"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/proposals"
	"quotedrop/internal/domain/users"
	"quotedrop/internal/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GET /q/:slug (public)
// A sent proposal opened through its share link becomes viewed.
func GetSharedProposal(c *gin.Context) {
	var p proposals.Proposal
	if err := database.DB.First(&p, "share_slug = ?", c.Param("slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load quote"})
		return
	}

	if p.Status == proposals.StatusArchived {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}

	if p.Status == proposals.StatusSent {
		if err := database.DB.Model(&proposals.Proposal{}).
			Where("id = ? AND status = ?", p.ID, proposals.StatusSent).
			Update("status", proposals.StatusViewed).Error; err != nil {
			logging.L.Warn("mark proposal viewed", zap.String("proposal_id", p.ID), zap.Error(err))
		} else {
			p.Status = proposals.StatusViewed
		}
	}

	var owner users.User
	showBranding := true
	if err := database.DB.First(&owner, p.UserID).Error; err == nil {
		showBranding = !pricing.IsPaidTier(access.EffectiveTier(time.Now(), owner))
	}

	c.JSON(http.StatusOK, SharedProposalDTO{
		Title:          p.Title,
		ClientName:     p.ClientName,
		TotalAmount:    p.TotalAmount.StringFixed(2),
		Status:         p.Status,
		DateSent:       p.DateSent,
		AcceptanceDate: p.AcceptanceDate,
		ShowBranding:   showBranding,
	})
}
