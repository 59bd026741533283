package entityapi

import (
	"net/http"

	"quotedrop/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// EntityResponse is everything a client needs to render the proposal list
// and form.
type EntityResponse struct {
	Config     entity.Config     `json:"config"`
	ListFields []entity.Field    `json:"listFields"`
	FormFields []entity.Field    `json:"formFields"`
	Zod        map[string]string `json:"zod"`
}

// GET /entity
func GetEntityConfig(c *gin.Context) {
	c.JSON(http.StatusOK, EntityResponse{
		Config:     entity.Proposal,
		ListFields: entity.ListFields(),
		FormFields: entity.FormFields(),
		Zod:        entity.ZodSchemas(entity.Proposal),
	})
}
