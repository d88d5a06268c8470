package services

import (
	"fmt"
	"time"

	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/events"
	"github.com/yeremiapane/bistro-pos/models"
	"github.com/yeremiapane/bistro-pos/repository"
	"github.com/yeremiapane/bistro-pos/utils"
)

// CreateOrderData adalah input pembuatan order. Type/status dikirim sebagai id
// code entry yang sudah di-resolve; items datang dari keranjang.
type CreateOrderData struct {
	TypeID       uint
	StatusID     uint
	TableID      *uint
	Subtotal     float64
	Tax          float64
	Tip          float64
	Total        float64
	UserID       uint
	CustomerName *string
	Items        []domain.CartItem
}

// OrderService adalah state machine order plus orkestrasi di sekitarnya:
// membuat order, menambah item ke order berjalan, dan menurunkan status order
// dari progres per-item. Penulisan lintas repository (order + items + extras)
// TIDAK transaksional; kegagalan di tengah dilaporkan dengan step yang gagal
// lewat OrderCreationError dan baris yang sudah tertulis dibiarkan, jadi
// caller bisa retry atau rekonsiliasi manual.
type OrderService struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.OrderItemRepository
	extraRepo repository.OrderItemExtraRepository
	registry  *CodeRegistry
	tables    *TableService
	taxRate   float64
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	extraRepo repository.OrderItemExtraRepository,
	registry *CodeRegistry,
	tables *TableService,
	taxRate float64,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		extraRepo: extraRepo,
		registry:  registry,
		tables:    tables,
		taxRate:   taxRate,
	}
}

// CreateOrder mempersist order, lalu satu OrderItem per baris keranjang dan
// satu OrderItemExtra per extra (parent sebelum children). Setelah persist,
// type/status di-reverse-resolve dan meja dine-in disinkronkan lewat
// TableService.
func (s *OrderService) CreateOrder(data CreateOrderData) (*models.Order, error) {
	orderNumber, err := s.orderRepo.GetNextOrderNumber()
	if err != nil {
		return nil, &domain.OrderCreationError{Step: "order number", Err: err}
	}

	order := models.Order{
		OrderNumber:  orderNumber,
		TypeID:       data.TypeID,
		StatusID:     data.StatusID,
		TableID:      data.TableID,
		Subtotal:     data.Subtotal,
		Tax:          data.Tax,
		Tip:          data.Tip,
		Total:        data.Total,
		CreatedAt:    time.Now(),
		UserID:       data.UserID,
		CustomerName: data.CustomerName,
	}
	if err := s.orderRepo.Create(&order); err != nil {
		return nil, &domain.OrderCreationError{Step: "order", Err: err}
	}

	for _, cartItem := range data.Items {
		orderItem := models.OrderItem{
			OrderID:   order.ID,
			ProductID: cartItem.ProductID,
			VariantID: cartItem.VariantID,
			Quantity:  cartItem.Quantity,
			UnitPrice: cartItem.UnitPrice,
			Notes:     cartItem.Notes,
			StatusID:  data.StatusID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.itemRepo.Create(&orderItem); err != nil {
			return nil, &domain.OrderCreationError{Step: "order item", Err: err}
		}

		for _, extraID := range cartItem.ExtraIDs {
			extra := models.OrderItemExtra{
				OrderID:     order.ID,
				OrderItemID: orderItem.ID,
				ExtraID:     extraID,
			}
			if err := s.extraRepo.Create(&extra); err != nil {
				return nil, &domain.OrderCreationError{Step: "order item extra", Err: err}
			}
		}
	}

	typeRef, err := s.registry.ReverseResolve(order.TypeID)
	if err != nil {
		return nil, &domain.OrderCreationError{Step: "resolve order type", Err: err}
	}
	statusRef, err := s.registry.ReverseResolve(order.StatusID)
	if err != nil {
		return nil, &domain.OrderCreationError{Step: "resolve order status", Err: err}
	}

	if err := s.tables.SyncTableForOrder(typeRef.Code, statusRef.Code, order.TableID); err != nil {
		return nil, &domain.OrderCreationError{Step: "table sync", Err: err}
	}

	utils.InfoLogger.Printf("Order %s created (type=%s, status=%s, items=%d, total=%s)",
		order.OrderNumber, typeRef.Code, statusRef.Code, len(data.Items),
		utils.FormatCurrencyEUR(order.Total))
	events.PublishOrderCreated(order)

	return &order, nil
}

// AddItemsToOrder menambahkan baris keranjang ke order yang sudah ada. Item
// baru selalu mulai di status OPEN, bukan status order saat ini. Subtotal
// bertambah dengan jumlah line total baru; pajak dihitung ulang dari subtotal
// penuh (tidak pernah inkremental); tip tidak disentuh.
func (s *OrderService) AddItemsToOrder(orderID uint, items []domain.CartItem) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewNotFoundError("order", "id %d", orderID)
	}

	openStatusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusOpen)
	if err != nil {
		return nil, err
	}

	var additionalSubtotal float64
	for _, cartItem := range items {
		// Line total dihitung ulang di sini; nilai kiriman client tidak dipercaya.
		lineTotal := cartItem.UnitPrice * float64(cartItem.Quantity)

		orderItem := models.OrderItem{
			OrderID:   order.ID,
			ProductID: cartItem.ProductID,
			VariantID: cartItem.VariantID,
			Quantity:  cartItem.Quantity,
			UnitPrice: cartItem.UnitPrice,
			Notes:     cartItem.Notes,
			StatusID:  openStatusID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.itemRepo.Create(&orderItem); err != nil {
			return nil, err
		}
		additionalSubtotal += lineTotal

		for _, extraID := range cartItem.ExtraIDs {
			extra := models.OrderItemExtra{
				OrderID:     order.ID,
				OrderItemID: orderItem.ID,
				ExtraID:     extraID,
			}
			if err := s.extraRepo.Create(&extra); err != nil {
				return nil, err
			}
		}
	}

	order.Subtotal += additionalSubtotal
	order.Tax = domain.TaxFromInclusive(order.Subtotal, s.taxRate)
	order.Total = domain.GrandTotal(order.Subtotal, order.Tip)
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	// Item baru bisa menarik order yang sudah READY/SERVED kembali ke PREPARING.
	if err := s.reconcileFromItems(orderID); err != nil {
		return nil, err
	}

	return s.orderRepo.FindByID(orderID)
}

// UpdateStatus memindahkan order ke status baru. Legalitas transisi dicek
// SEBELUM mutasi apapun; transisi ilegal meninggalkan semua state utuh.
// Status terminal menstempel completedAt dan membebaskan meja.
func (s *OrderService) UpdateStatus(orderID, newStatusID uint) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewNotFoundError("order", "id %d", orderID)
	}

	currentRef, err := s.registry.ReverseResolve(order.StatusID)
	if err != nil {
		return nil, err
	}
	newRef, err := s.registry.ReverseResolve(newStatusID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(currentRef.Code, newRef.Code) {
		return nil, &domain.InvalidTransitionError{From: currentRef.Code, To: newRef.Code}
	}

	order.StatusID = newStatusID
	if domain.IsFinalStatus(newRef.Code) {
		now := time.Now()
		order.CompletedAt = &now
	} else {
		// COMPLETED -> PREPARING membuka order kembali; stempel penutupan
		// lama harus ikut hilang supaya order terhitung aktif lagi.
		order.CompletedAt = nil
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	if domain.IsFinalStatus(newRef.Code) && order.TableID != nil {
		typeRef, err := s.registry.ReverseResolve(order.TypeID)
		if err != nil {
			return nil, err
		}
		if err := s.tables.SyncTableForOrder(typeRef.Code, newRef.Code, order.TableID); err != nil {
			return nil, err
		}
	}

	utils.InfoLogger.Printf("Order %d status %s -> %s", order.ID, currentRef.Code, newRef.Code)
	events.PublishOrderUpdate(*order)

	return order, nil
}

// CancelOrder -> status CANCELLED plus alasan pembatalan. Pembatalan selalu
// bisa dicapai dari status manapun, jadi tidak lewat cek transisi; meja selalu
// dibebaskan jika ada.
func (s *OrderService) CancelOrder(orderID uint, reason string) (*models.Order, error) {
	cancelledStatusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusCancelled)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewNotFoundError("order", "id %d", orderID)
	}

	now := time.Now()
	order.StatusID = cancelledStatusID
	order.CancelledReason = &reason
	order.CompletedAt = &now
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	if order.TableID != nil {
		typeRef, err := s.registry.ReverseResolve(order.TypeID)
		if err != nil {
			return nil, err
		}
		if err := s.tables.SyncTableForOrder(typeRef.Code, domain.StatusCancelled, order.TableID); err != nil {
			return nil, err
		}
	}

	utils.InfoLogger.Printf("Order %d cancelled: %s", order.ID, reason)
	events.PublishOrderUpdate(*order)

	return order, nil
}

// CompleteOrder -> UpdateStatus ke COMPLETED.
func (s *OrderService) CompleteOrder(orderID uint) (*models.Order, error) {
	completedStatusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}
	return s.UpdateStatus(orderID, completedStatusID)
}

// UpdateOrderItemStatus mengubah status satu order item (progres dapur per
// baris) lalu menjalankan aturan agregasi pada order induknya.
func (s *OrderService) UpdateOrderItemStatus(itemID, statusID uint) (*models.OrderItem, error) {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NewNotFoundError("order item", "id %d", itemID)
	}

	item.StatusID = statusID
	item.UpdatedAt = time.Now()
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}

	events.PublishItemUpdate(*item)

	if err := s.reconcileFromItems(item.OrderID); err != nil {
		return nil, err
	}
	return item, nil
}

// reconcileFromItems menurunkan status order dari progres item-itemnya.
// Ini satu-satunya transisi otomatis di sistem dan sengaja TIDAK lewat cek
// legalitas transisi; cek itu hanya untuk perpindahan yang diminta user.
// Aturan:
//   - semua item READY          => order SERVED (no-op jika sudah SERVED/COMPLETED)
//   - belum semua READY, order di READY/SERVED/OUT_FOR_DELIVERY => tarik ke PREPARING
//   - order masih OPEN dan ada item yang mulai PREPARING/READY  => maju ke PREPARING
func (s *OrderService) reconcileFromItems(orderID uint) error {
	items, err := s.itemRepo.FindByOrderID(orderID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	readyStatusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusReady)
	if err != nil {
		return err
	}
	preparingStatusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusPreparing)
	if err != nil {
		return err
	}

	allReady := true
	anyStarted := false
	for _, item := range items {
		if item.StatusID != readyStatusID {
			allReady = false
		}
		if item.StatusID == readyStatusID || item.StatusID == preparingStatusID {
			anyStarted = true
		}
	}

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return nil
	}

	currentRef, err := s.registry.ReverseResolve(order.StatusID)
	if err != nil {
		return err
	}

	if allReady {
		if currentRef.Code == domain.StatusServed || currentRef.Code == domain.StatusCompleted {
			return nil
		}
		servedStatusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusServed)
		if err != nil {
			return err
		}
		return s.applyStatus(order, servedStatusID, domain.StatusServed)
	}

	switch currentRef.Code {
	case domain.StatusReady, domain.StatusServed, domain.StatusOutForDelivery:
		return s.applyStatus(order, preparingStatusID, domain.StatusPreparing)
	case domain.StatusOpen:
		if anyStarted {
			return s.applyStatus(order, preparingStatusID, domain.StatusPreparing)
		}
	}
	return nil
}

// applyStatus menulis status hasil agregasi tanpa cek transisi. SERVED dan
// PREPARING bukan status terminal, jadi tidak ada stempel completedAt maupun
// sinkronisasi meja di sini.
func (s *OrderService) applyStatus(order *models.Order, statusID uint, statusCode string) error {
	order.StatusID = statusID
	if err := s.orderRepo.Update(order); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Order %d reconciled to %s from item progress", order.ID, statusCode)
	events.PublishOrderUpdate(*order)
	return nil
}

// GetOpenOrderByTable -> satu-satunya order aktif (non-terminal) untuk sebuah
// meja, nil jika tidak ada. Lebih dari satu order aktif berarti data melanggar
// invariant dan dikembalikan sebagai error, bukan pick-first diam-diam.
func (s *OrderService) GetOpenOrderByTable(tableID uint) (*models.Order, error) {
	orders, err := s.orderRepo.FindByTable(tableID)
	if err != nil {
		return nil, err
	}

	completedStatusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}
	cancelledStatusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusCancelled)
	if err != nil {
		return nil, err
	}

	var active []models.Order
	for _, order := range orders {
		if order.StatusID != completedStatusID && order.StatusID != cancelledStatusID {
			active = append(active, order)
		}
	}

	switch len(active) {
	case 0:
		return nil, nil
	case 1:
		return &active[0], nil
	default:
		return nil, &domain.InvariantViolationError{
			Message: fmt.Sprintf("multiple active orders (%d) found for table %d, expected at most one", len(active), tableID),
		}
	}
}

func (s *OrderService) GetOrderByID(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NewNotFoundError("order", "id %d", orderID)
	}
	return order, nil
}

func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.FindAll()
}

// GetActiveOrders -> order yang masih di dapur. SERVED sudah keluar dari
// dapur jadi ikut dikecualikan bersama status terminal.
func (s *OrderService) GetActiveOrders() ([]models.Order, error) {
	return s.activeOrders(true)
}

// GetActiveAndServedOrders -> semua order non-terminal, termasuk SERVED.
func (s *OrderService) GetActiveAndServedOrders() ([]models.Order, error) {
	return s.activeOrders(false)
}

func (s *OrderService) activeOrders(excludeServed bool) ([]models.Order, error) {
	completedStatusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}
	cancelledStatusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusCancelled)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindActiveOrders([]uint{completedStatusID, cancelledStatusID})
	if err != nil {
		return nil, err
	}

	if !excludeServed {
		return orders, nil
	}

	servedStatusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, domain.StatusServed)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.StatusID == servedStatusID {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered, nil
}

func (s *OrderService) GetOrdersByStatus(statusCode string) ([]models.Order, error) {
	statusID, err := s.registry.Resolve(domain.CodeTypeOrderStatus, statusCode)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.FindByStatus(statusID)
}

func (s *OrderService) GetOrderItems(orderID uint) ([]models.OrderItem, error) {
	return s.itemRepo.FindByOrderID(orderID)
}

// GetOrderItemExtras -> daftar extra id untuk satu order item.
func (s *OrderService) GetOrderItemExtras(orderItemID uint) ([]uint, error) {
	extras, err := s.extraRepo.FindByOrderItemID(orderItemID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(extras))
	for _, extra := range extras {
		ids = append(ids, extra.ExtraID)
	}
	return ids, nil
}
