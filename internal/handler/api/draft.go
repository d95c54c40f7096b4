package api

import (
	"net/http"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/draft"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DraftHandler struct {
	cmds commands.DraftCommands
}

func NewDraftHandler(cmds commands.DraftCommands) *DraftHandler {
	return &DraftHandler{cmds: cmds}
}

func bindDraftPath(c *gin.Context) (uuid.UUID, booking.Kind, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, "", uuid.Nil, false
	}
	var path reqdto.DraftPath
	if err := c.ShouldBindUri(&path); err != nil {
		respondBindError(c, err)
		return uuid.Nil, "", uuid.Nil, false
	}
	return userID, booking.Kind(path.Kind), uuid.MustParse(path.ResourceID), true
}

// @Summary Get booking draft
// @Description Resume the booking wizard for a resource
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param kind path string true "hotel, car or flight"
// @Param resourceId path string true "Room type, car or flight ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /drafts/{kind}/{resourceId} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	userID, kind, resourceID, ok := bindDraftPath(c)
	if !ok {
		return
	}
	d, err := h.cmds.GetDraft(c.Request.Context(), userID, kind, resourceID)
	if err != nil {
		respondError(c, err, "Failed to load draft")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Save booking draft
// @Description Store wizard state; a step may repeat, go back, or advance by one
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "hotel, car or flight"
// @Param resourceId path string true "Room type, car or flight ID"
// @Param request body reqdto.SaveDraftRequest true "Draft step and data"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /drafts/{kind}/{resourceId} [put]
func (h *DraftHandler) Save(c *gin.Context) {
	userID, kind, resourceID, ok := bindDraftPath(c)
	if !ok {
		return
	}
	var body reqdto.SaveDraftRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	d, err := h.cmds.SaveDraft(c.Request.Context(), userID, commands.SaveDraftRequest{
		Kind:       kind,
		ResourceID: resourceID,
		Step:       draft.Step(body.Step),
		Data:       body.Data,
	})
	if err != nil {
		respondError(c, err, "Failed to save draft")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Discard booking draft
// @Tags drafts
// @Security BearerAuth
// @Param kind path string true "hotel, car or flight"
// @Param resourceId path string true "Room type, car or flight ID"
// @Success 204 "No Content"
// @Router /drafts/{kind}/{resourceId} [delete]
func (h *DraftHandler) Delete(c *gin.Context) {
	userID, kind, resourceID, ok := bindDraftPath(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteDraft(c.Request.Context(), userID, kind, resourceID); err != nil {
		respondError(c, err, "Failed to delete draft")
		return
	}
	c.Status(http.StatusNoContent)
}
