package proposals

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"quotedrop/database"
	"quotedrop/internal/domain/entity"
	"quotedrop/internal/domain/proposals"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GET /proposals/export
func ExportProposals(c *gin.Context) {
	if !entity.Proposal.AllowExport {
		c.JSON(http.StatusForbidden, gin.H{"error": "Export is not enabled for " + entity.Proposal.PluralName})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []proposals.Proposal
	if err := userProposalsQuery(database.DB, userID).Order(orderClause("", "")).Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load proposals"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, entity.Proposal.Slug))
	c.Status(http.StatusOK)
	c.Writer.Header().Set("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	if err := writeCSV(w, entity.Proposal, list); err != nil {
		_ = c.Error(err)
	}
}

func writeCSV(w *csv.Writer, cfg entity.Config, list []proposals.Proposal) error {
	header := []string{"id"}
	for _, f := range cfg.Fields {
		header = append(header, f.Name)
	}
	header = append(header, "created_at")
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range list {
		values := p.Values()
		row := []string{p.ID}
		for _, f := range cfg.Fields {
			row = append(row, cell(values[f.Name]))
		}
		row = append(row, p.CreatedAt.UTC().Format(time.RFC3339))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case decimal.Decimal:
		return x.StringFixed(2)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format("2006-01-02")
	default:
		return fmt.Sprint(x)
	}
}
