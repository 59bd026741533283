package proposals

import (
	"strings"

	"quotedrop/internal/domain/entity"
	"quotedrop/internal/domain/proposals"
	"quotedrop/internal/domain/users"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func userProposalsQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&proposals.Proposal{}).
		Where("user_id = ?", userID)
}

// lockUser takes the user's row lock so concurrent metered writes of the
// same user count and insert one at a time. sqlite has no row locks; its
// single connection already serializes writers.
func lockUser(tx *gorm.DB, userID uint) error {
	if tx.Dialector.Name() == "sqlite" {
		return nil
	}
	return lockUserQuery(tx, userID).Error
}

func lockUserQuery(tx *gorm.DB, userID uint) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&users.User{}, userID)
}

// orderClause builds the ORDER BY for a requested sort, falling back to the
// entity's default sort. Only list fields and timestamps are sortable.
func orderClause(field, dir string) string {
	def := entity.Proposal.DefaultSort
	if field == "" {
		field = def.Field
	}

	sortable := map[string]bool{"created_at": true, "updated_at": true}
	for _, f := range entity.ListFields() {
		sortable[f.Name] = true
	}
	if !sortable[field] {
		field = def.Field
	}

	direction := strings.ToLower(dir)
	if direction != string(entity.SortAsc) && direction != string(entity.SortDesc) {
		direction = string(def.Direction)
	}
	return field + " " + strings.ToUpper(direction)
}
