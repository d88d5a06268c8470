package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/services"
	"github.com/yeremiapane/bistro-pos/utils"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

// SetContext -> memilih keranjang aktif: table_id untuk dine-in, atau
// order type (TAKEAWAY/DELIVERY) sebagai kunci tetap.
func (cc *CartController) SetContext(c *gin.Context) {
	var req struct {
		TableID *uint  `json:"table_id"`
		Context string `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	switch {
	case req.TableID != nil:
		cc.Carts.SetContext(services.TableContextKey(*req.TableID))
	case req.Context != "":
		cc.Carts.SetContext(req.Context)
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("table_id or context is required"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart context set", gin.H{
		"context": cc.Carts.ActiveContext(),
	})
}

func (cc *CartController) AddItem(c *gin.Context) {
	var item domain.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if item.Quantity <= 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("quantity must be positive"))
		return
	}

	cc.Carts.AddItem(item)
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", cc.Carts.Summary())
}

func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req struct {
		Index    int `json:"index"`
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Carts.UpdateQuantity(req.Index, req.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Cart updated", cc.Carts.Summary())
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	var req struct {
		Index int `json:"index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cc.Carts.RemoveItem(req.Index)
	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", cc.Carts.Summary())
}

// Clear -> mengosongkan keranjang context aktif saja.
func (cc *CartController) Clear(c *gin.Context) {
	cc.Carts.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}

func (cc *CartController) GetSummary(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart summary", cc.Carts.Summary())
}
