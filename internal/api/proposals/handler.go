package proposals

import (
	"errors"
	"net/http"
	"time"

	"quotedrop/config"
	"quotedrop/database"
	"quotedrop/internal/domain/entity"
	"quotedrop/internal/domain/pricing"
	"quotedrop/internal/domain/proposals"
	"quotedrop/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errLimitReached = errors.New("proposal limit reached")

// proposalID returns the :id param, answering 404 when it is not a uuid.
func proposalID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
		return "", false
	}
	return id.String(), true
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func usageFor(db *gorm.DB, tier string, userID uint) (UsageDTO, error) {
	used, err := proposals.CountActiveThisMonth(db, userID, time.Now())
	if err != nil {
		return UsageDTO{}, err
	}
	limit, ok := pricing.GetLimits(tier)[pricing.LimitProposals]
	if !ok {
		limit = 0
	}
	return UsageDTO{
		Tier:      tier,
		Used:      used,
		Limit:     limit,
		Remaining: pricing.Current().Remaining(tier, pricing.LimitProposals, used),
	}, nil
}

func respondInvalid(c *gin.Context, err error) {
	var fe entity.FieldErrors
	if errors.As(err, &fe) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal", "fields": fe})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// GET /proposals
func ListProposals(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	q := userProposalsQuery(database.DB, userID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var list []proposals.Proposal
	if err := q.Order(orderClause(c.Query("sort"), c.Query("dir"))).Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load proposals"})
		return
	}

	usage, err := usageFor(database.DB, c.GetString("tier"), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute usage"})
		return
	}

	out := ListResponse{
		Fields: entity.ListFields(),
		Items:  make([]map[string]any, 0, len(list)),
		Usage:  usage,
	}
	for _, p := range list {
		out.Items = append(out.Items, toListItem(p))
	}
	c.JSON(http.StatusOK, out)
}

// GET /proposals/:id
func GetProposal(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, ok := proposalID(c)
	if !ok {
		return
	}

	var p proposals.Proposal
	if err := userProposalsQuery(database.DB, userID).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load proposal"})
		return
	}

	c.JSON(http.StatusOK, toProposalDTO(p, config.AppURL))
}

// POST /proposals
func CreateProposal(c *gin.Context) {
	if !entity.Proposal.AllowCreate {
		c.JSON(http.StatusForbidden, gin.H{"error": "Creating proposals is disabled"})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	rec, err := entity.ParseRecord(entity.Proposal, body, false)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	p := proposals.Proposal{UserID: userID}
	p.Apply(rec)
	p.ShareSlug = proposals.NewShareSlug(p.Title)
	if p.ShareableLink == nil {
		link := proposals.BuildShareURL(config.AppURL, p.ShareSlug)
		p.ShareableLink = &link
	}

	tier := c.GetString("tier")
	var usage UsageDTO

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// archived drafts do not count towards the limit
		if p.Status != proposals.StatusArchived {
			if err := lockUser(tx, userID); err != nil {
				return err
			}
			u, err := usageFor(tx, tier, userID)
			if err != nil {
				return err
			}
			usage = u
			if !pricing.CheckLimit(tier, pricing.LimitProposals, u.Used) {
				return errLimitReached
			}
		}
		return tx.Create(&p).Error
	})

	if errors.Is(err, errLimitReached) {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": "Proposal limit reached for your plan",
			"tier":  usage.Tier,
			"limit": usage.Limit,
			"used":  usage.Used,
		})
		return
	}
	if err != nil {
		logging.L.Error("create proposal", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create proposal", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toProposalDTO(p, config.AppURL))
}

// PUT /proposals/:id
func UpdateProposal(c *gin.Context) {
	if !entity.Proposal.AllowEdit {
		c.JSON(http.StatusForbidden, gin.H{"error": "Editing proposals is disabled"})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, ok := proposalID(c)
	if !ok {
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	rec, err := entity.ParseRecord(entity.Proposal, body, true)
	if err != nil {
		respondInvalid(c, err)
		return
	}

	tier := c.GetString("tier")
	var p proposals.Proposal

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, userID); err != nil {
			return err
		}
		if err := userProposalsQuery(tx, userID).First(&p, "id = ?", id).Error; err != nil {
			return err
		}

		wasArchived := p.Status == proposals.StatusArchived
		p.Apply(rec)

		// restoring an archived proposal of this month counts again
		if wasArchived && p.Status != proposals.StatusArchived && !p.CreatedAt.Before(proposals.MonthStart(time.Now())) {
			used, err := proposals.CountActiveThisMonth(tx, userID, time.Now())
			if err != nil {
				return err
			}
			if !pricing.CheckLimit(tier, pricing.LimitProposals, used) {
				return errLimitReached
			}
		}

		return tx.Save(&p).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
		return
	case errors.Is(err, errLimitReached):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Proposal limit reached for your plan"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update proposal", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toProposalDTO(p, config.AppURL))
}

// DELETE /proposals/:id
func DeleteProposal(c *gin.Context) {
	if !entity.Proposal.AllowDelete {
		c.JSON(http.StatusForbidden, gin.H{"error": "Deleting proposals is disabled"})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, ok := proposalID(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&proposals.Proposal{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete proposal"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Proposal deleted"})
}
