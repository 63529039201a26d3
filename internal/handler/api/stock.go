package api

import (
	"net/http"

	reqdto "autoparts-pos/internal/handler/dto/request"
	resdto "autoparts-pos/internal/handler/dto/response"
	"autoparts-pos/internal/handler/httperr"
	"autoparts-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	q queries.StockQueries
}

func NewStockHandler(q queries.StockQueries) *StockHandler {
	return &StockHandler{q: q}
}

// @Summary Classify stock level
// @Tags stock
// @Accept json
// @Produce json
// @Param request body reqdto.StockClassifyRequest true "Current and minimum stock"
// @Success 200 {object} resdto.StockStatusResponse
// @Failure 400 {object} httperr.Response
// @Router /api/stock/classify [post]
func (h *StockHandler) Classify(c *gin.Context) {
	var req reqdto.StockClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockStatus(h.q.Classify(req.Current.Int(), req.Minimum.Int())))
}

// @Summary Filter products by stock level
// @Description filter is one of all, low, out. Empty means all.
// @Tags stock
// @Accept json
// @Produce json
// @Param request body reqdto.StockFilterRequest true "Filter and products"
// @Success 200 {object} resdto.StockFilterResponse
// @Failure 400 {object} httperr.Response
// @Router /api/stock/filter [post]
func (h *StockHandler) Filter(c *gin.Context) {
	var req reqdto.StockFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	items, err := h.q.Filter(req.Filter, req.ToItems())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStockItems(items))
}
