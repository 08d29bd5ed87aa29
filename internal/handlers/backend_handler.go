package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/easyscheduler/admin-backend/internal/domain/writer"
	"github.com/easyscheduler/admin-backend/internal/httperr"
	"github.com/easyscheduler/admin-backend/internal/middleware"
	"github.com/easyscheduler/admin-backend/internal/models"
	ucWriter "github.com/easyscheduler/admin-backend/internal/usecase/writer"
)

// BackendHandler serves the page-level data aggregates behind the privilege
// gate. Each endpoint mirrors one backend page: the gate runs first (as
// route middleware), then read-only aggregation.
type BackendHandler struct {
	db     *gorm.DB
	listUC *ucWriter.ListWriters
}

func NewBackendHandler(db *gorm.DB, listUC *ucWriter.ListWriters) *BackendHandler {
	return &BackendHandler{db: db, listUC: listUC}
}

// Users backs the user-management page: every writer record, denormalized,
// plus the available providers they can be linked to.
func (h *BackendHandler) Users(c *gin.Context) {
	writers, err := h.listUC.Execute(c.Request.Context(), domain.ListFilter{})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	var providers []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Joins("JOIN roles ON roles.id = users.id_role").
		Where("roles.slug = ?", models.RoleProvider).
		Order("users.last_name ASC").
		Find(&providers).Error; err != nil {
		httperr.Internal(c, httperr.CodeInternal, "could not load providers")
		return
	}

	identity := middleware.IdentityFrom(c)

	c.JSON(http.StatusOK, gin.H{
		"user_id":   identity.UserID,
		"role_slug": identity.RoleSlug,
		"writers":   writers,
		"providers": providers,
	})
}

// Appointments backs the calendar page. A writer sees only the providers it
// handles; other roles see everything.
func (h *BackendHandler) Appointments(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	writerProviders := []uint{}
	if identity.RoleSlug == models.RoleWriter {
		var links []models.WriterProvider
		if err := h.db.WithContext(c.Request.Context()).
			Where("id_user_writer = ?", identity.UserID).
			Find(&links).Error; err != nil {
			httperr.Internal(c, httperr.CodeInternal, "could not load writer providers")
			return
		}
		for _, link := range links {
			writerProviders = append(writerProviders, link.ProviderID)
		}
	}

	var providers []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Joins("JOIN roles ON roles.id = users.id_role").
		Where("roles.slug = ?", models.RoleProvider).
		Order("users.last_name ASC").
		Find(&providers).Error; err != nil {
		httperr.Internal(c, httperr.CodeInternal, "could not load providers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":          identity.UserID,
		"role_slug":        identity.RoleSlug,
		"providers":        providers,
		"writer_providers": writerProviders,
	})
}
