package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/easyscheduler/admin-backend/internal/domain/writer"
	"github.com/easyscheduler/admin-backend/internal/httperr"
	"github.com/easyscheduler/admin-backend/internal/httpresp"
	ucWriter "github.com/easyscheduler/admin-backend/internal/usecase/writer"
)

type WriterHandler struct {
	saveUC     *ucWriter.SaveWriter
	deleteUC   *ucWriter.DeleteWriter
	getUC      *ucWriter.GetWriter
	listUC     *ucWriter.ListWriters
	settingsUC *ucWriter.WriterSettings
}

func NewWriterHandler(
	saveUC *ucWriter.SaveWriter,
	deleteUC *ucWriter.DeleteWriter,
	getUC *ucWriter.GetWriter,
	listUC *ucWriter.ListWriters,
	settingsUC *ucWriter.WriterSettings,
) *WriterHandler {
	return &WriterHandler{
		saveUC:     saveUC,
		deleteUC:   deleteUC,
		getUC:      getUC,
		listUC:     listUC,
		settingsUC: settingsUC,
	}
}

// ======================================================
// SAVE (insert or update)
// ======================================================
func (h *WriterHandler) Save(c *gin.Context) {
	var payload domain.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, err.Error())
		return
	}

	id, err := h.saveUC.Execute(c.Request.Context(), payload)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ======================================================
// DELETE
// ======================================================
func (h *WriterHandler) Delete(c *gin.Context) {
	deleted, err := h.deleteUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ======================================================
// READS
// ======================================================
func (h *WriterHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "writer id must be numeric")
		return
	}

	record, err := h.getUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, record)
}

func (h *WriterHandler) List(c *gin.Context) {
	filter := domain.ListFilter{Query: c.Query("query")}

	records, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, records)
}

// ======================================================
// DIRECT SETTING ACCESS
// ======================================================

type setSettingRequest struct {
	Value any `json:"value"`
}

func (h *WriterHandler) GetSetting(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "writer id must be numeric")
		return
	}

	value, err := h.settingsUC.Get(c.Request.Context(), c.Param("name"), uint(id))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": c.Param("name"), "value": value})
}

func (h *WriterHandler) SetSetting(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidArgument, "writer id must be numeric")
		return
	}

	var req setSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, err.Error())
		return
	}

	if err := h.settingsUC.Set(c.Request.Context(), c.Param("name"), req.Value, uint(id)); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
