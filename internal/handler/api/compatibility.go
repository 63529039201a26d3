package api

import (
	"net/http"

	reqdto "autoparts-pos/internal/handler/dto/request"
	resdto "autoparts-pos/internal/handler/dto/response"
	"autoparts-pos/internal/handler/httperr"
	"autoparts-pos/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CompatibilityHandler struct {
	cmds commands.CompatibilityCommands
}

func NewCompatibilityHandler(cmds commands.CompatibilityCommands) *CompatibilityHandler {
	return &CompatibilityHandler{cmds: cmds}
}

// @Summary Add a vehicle year range to a selection
// @Description Creates or fetches one catalog model per year and merges them into the selection.
// @Description Years that fail are listed in failures; the rest are still added.
// @Tags vehicle-models
// @Accept json
// @Produce json
// @Param request body reqdto.AddVehicleRangeRequest true "Range and current selection"
// @Success 200 {object} resdto.AddVehicleRangeResponse
// @Failure 400 {object} httperr.Response
// @Router /api/vehicle-models/ranges [post]
func (h *CompatibilityHandler) AddRange(c *gin.Context) {
	var req reqdto.AddVehicleRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	result, err := h.cmds.AddRange(c.Request.Context(), cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAddRangeResult(result))
}

// @Summary Remove a model from a selection
// @Tags vehicle-models
// @Accept json
// @Produce json
// @Param id path string true "Vehicle model ID"
// @Param request body reqdto.SelectionRequest true "Current selection"
// @Success 200 {object} resdto.SelectionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/vehicle-models/selection/{id} [delete]
func (h *CompatibilityHandler) RemoveFromSelection(c *gin.Context) {
	var req reqdto.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	selected, err := reqdto.ToVehicleModels(req.Selected)
	if err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSelection(h.cmds.RemoveFromSelection(selected, c.Param("id"))))
}

// @Summary Clear a selection
// @Tags vehicle-models
// @Produce json
// @Success 200 {object} resdto.SelectionResponse
// @Router /api/vehicle-models/selection [delete]
func (h *CompatibilityHandler) ClearSelection(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSelection(h.cmds.ClearSelection()))
}
