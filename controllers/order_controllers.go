package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/services"
	"github.com/yeremiapane/bistro-pos/utils"
)

type OrderController struct {
	Orders   *services.OrderService
	Carts    *services.CartService
	Registry *services.CodeRegistry
}

func NewOrderController(orders *services.OrderService, carts *services.CartService, registry *services.CodeRegistry) *OrderController {
	return &OrderController{Orders: orders, Carts: carts, Registry: registry}
}

// CreateOrder -> membuat order dari keranjang context aktif. Order baru
// selalu mulai di status OPEN; type dikirim sebagai code simbolik.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		OrderType    string  `json:"order_type" binding:"required"` // DINE_IN / TAKEAWAY / DELIVERY
		TableID      *uint   `json:"table_id"`
		Tip          float64 `json:"tip"`
		CustomerName *string `json:"customer_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.OrderType == domain.TypeDineIn && req.TableID == nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("table_id is required for dine-in orders"))
		return
	}

	// Keranjang context ini adalah isi order-nya
	if req.TableID != nil {
		oc.Carts.SetContext(services.TableContextKey(*req.TableID))
	} else {
		oc.Carts.SetContext(req.OrderType)
	}
	summary := oc.Carts.Summary()
	if len(summary.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("cart is empty"))
		return
	}

	typeID, err := oc.Registry.Resolve(domain.CodeTypeOrderType, req.OrderType)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	statusID, err := oc.Registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusOpen)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	userID, _ := c.Get("userID")
	uid, _ := userID.(uint)

	order, err := oc.Orders.CreateOrder(services.CreateOrderData{
		TypeID:       typeID,
		StatusID:     statusID,
		TableID:      req.TableID,
		Subtotal:     summary.Subtotal,
		Tax:          summary.Tax,
		Tip:          req.Tip,
		Total:        domain.GrandTotal(summary.Subtotal, req.Tip),
		UserID:       uid,
		CustomerName: req.CustomerName,
		Items:        summary.Items,
	})
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	oc.Carts.Clear()

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// AddItems -> menambah item ke order yang sudah berjalan.
func (oc *OrderController) AddItems(c *gin.Context) {
	orderID, err := paramUint(c, "order_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Items []domain.CartItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.AddItemsToOrder(orderID, req.Items)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Items added to order", order)
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.GetAllOrders()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID, err := paramUint(c, "order_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.GetOrderByID(orderID)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetActiveOrders -> order yang masih di dapur (kitchen display).
func (oc *OrderController) GetActiveOrders(c *gin.Context) {
	orders, err := oc.Orders.GetActiveOrders()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active orders", orders)
}

// GetActiveAndServedOrders -> semua order non-terminal (layar kasir).
func (oc *OrderController) GetActiveAndServedOrders(c *gin.Context) {
	orders, err := oc.Orders.GetActiveAndServedOrders()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active and served orders", orders)
}

func (oc *OrderController) GetOrdersByStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("status query parameter is required"))
		return
	}

	orders, err := oc.Orders.GetOrdersByStatus(status)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders with status: "+status, orders)
}

func (oc *OrderController) GetOrderItems(c *gin.Context) {
	orderID, err := paramUint(c, "order_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	items, err := oc.Orders.GetOrderItems(orderID)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order items", items)
}

func (oc *OrderController) GetOrderItemExtras(c *gin.Context) {
	itemID, err := paramUint(c, "item_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	extraIDs, err := oc.Orders.GetOrderItemExtras(itemID)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item extras", extraIDs)
}

// GetOpenOrderByTable -> order aktif di satu meja, null jika meja kosong.
func (oc *OrderController) GetOpenOrderByTable(c *gin.Context) {
	tableID, err := paramUint(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.GetOpenOrderByTable(tableID)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Open order for table", order)
}

// UpdateOrderStatus -> transisi status yang diminta user, dicek legalitasnya.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := paramUint(c, "order_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	statusID, err := oc.Registry.Resolve(domain.CodeTypeOrderStatus, req.Status)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	order, err := oc.Orders.UpdateStatus(orderID, statusID)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// UpdateOrderItemStatus -> progres dapur per baris; status order induk
// dihitung ulang otomatis.
func (oc *OrderController) UpdateOrderItemStatus(c *gin.Context) {
	itemID, err := paramUint(c, "item_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	statusID, err := oc.Registry.Resolve(domain.CodeTypeOrderStatus, req.Status)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	item, err := oc.Orders.UpdateOrderItemStatus(itemID, statusID)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item status updated", item)
}

func (oc *OrderController) CompleteOrder(c *gin.Context) {
	orderID, err := paramUint(c, "order_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.CompleteOrder(orderID)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order completed", order)
}

func (oc *OrderController) CancelOrder(c *gin.Context) {
	orderID, err := paramUint(c, "order_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.CancelOrder(orderID, req.Reason)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

func paramUint(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return uint(value), nil
}
