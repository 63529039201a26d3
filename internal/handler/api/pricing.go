package api

import (
	"net/http"

	reqdto "autoparts-pos/internal/handler/dto/request"
	resdto "autoparts-pos/internal/handler/dto/response"
	"autoparts-pos/internal/handler/httperr"
	"autoparts-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Gross price from net
// @Description Adds IVA to a net amount, rounded half-up to whole pesos
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.GrossFromNetRequest true "Net amount"
// @Success 200 {object} resdto.PriceConversionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/pricing/gross [post]
func (h *PricingHandler) GrossFromNet(c *gin.Context) {
	var req reqdto.GrossFromNetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceConversion(h.q.GrossFromNet(req.Net.Money())))
}

// @Summary Net price from gross
// @Description Removes IVA from a gross amount. Also the suggested purchase cost for a sale price.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.NetFromGrossRequest true "Gross amount"
// @Success 200 {object} resdto.PriceConversionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/pricing/net [post]
func (h *PricingHandler) NetFromGross(c *gin.Context) {
	var req reqdto.NetFromGrossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceConversion(h.q.NetFromGross(req.Gross.Money())))
}

// @Summary Purchase totals
// @Description Net, IVA and total for a supplier purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body reqdto.PurchaseTotalsRequest true "Purchase lines"
// @Success 200 {object} resdto.PurchaseTotalsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/purchases/totals [post]
func (h *PricingHandler) PurchaseTotals(c *gin.Context) {
	var req reqdto.PurchaseTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	includeTax := req.IncludesTax()
	totals := h.q.PurchaseTotals(reqdto.ToLineItems(req.Items), includeTax)
	c.JSON(http.StatusOK, resdto.FromPurchaseTotals(totals, skusOf(req.Items), includeTax))
}

// @Summary Counter movement total
// @Description Total of a sale, loss or internal use. Only sales carry money.
// @Tags counter
// @Accept json
// @Produce json
// @Param request body reqdto.CounterMovementRequest true "Counter movement"
// @Success 200 {object} resdto.CounterMovementResponse
// @Failure 400 {object} httperr.Response
// @Router /api/counter-movements/totals [post]
func (h *PricingHandler) CounterMovementTotal(c *gin.Context) {
	var req reqdto.CounterMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err)
		return
	}
	view, err := h.q.CounterMovementTotal(req.Kind, req.Seller, reqdto.ToLineItems(req.Items))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCounterMovement(view, skusOf(req.Items)))
}

func skusOf(items []reqdto.LineItemRequest) []string {
	skus := make([]string, len(items))
	for i, it := range items {
		skus[i] = it.SKU
	}
	return skus
}
