package services

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/utils"
)

// TableContextKey -> kunci keranjang untuk satu meja ("table_3").
// Order type non dine-in memakai code-nya sendiri sebagai kunci tetap
// ("TAKEAWAY", "DELIVERY").
func TableContextKey(tableID uint) string {
	return fmt.Sprintf("table_%d", tableID)
}

// CartService menampung baris pesanan yang belum dikirim, dipartisi per
// context (meja atau order type). Ganti context tidak membuang keranjang lain:
// beberapa meja bisa punya keranjang berjalan sekaligus. Isi keranjang
// dipersist ke file JSON dan dimuat ulang saat start, sehingga restart
// aplikasi tidak menghilangkan pesanan yang sedang diketik.
// Service ini tidak pernah menyentuh repository backend.
type CartService struct {
	mu        sync.Mutex
	carts     map[string][]domain.CartItem
	activeKey string
	storePath string
	taxRate   float64
}

func NewCartService(storePath string, taxRate float64) *CartService {
	s := &CartService{
		carts:     make(map[string][]domain.CartItem),
		activeKey: "default",
		storePath: storePath,
		taxRate:   taxRate,
	}
	s.loadFromStore()
	return s
}

// SetContext mengganti context aktif tanpa menyentuh context lain.
func (s *CartService) SetContext(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeKey = key
}

func (s *CartService) ActiveContext() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeKey
}

// AddItem menambahkan satu baris ke context aktif. Baris yang mergeable
// (product, variant, dan set extra sama; notes diabaikan) digabung dengan
// menjumlahkan quantity; posisi baris lama dipertahankan.
func (s *CartService) AddItem(item domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[s.activeKey]
	for i := range items {
		if domain.CartItemsMergeable(items[i], item) {
			items[i].Quantity += item.Quantity
			items[i].LineTotal = items[i].UnitPrice * float64(items[i].Quantity)
			s.carts[s.activeKey] = items
			s.saveLocked()
			return
		}
	}

	item.LineTotal = item.UnitPrice * float64(item.Quantity)
	s.carts[s.activeKey] = append(items, item)
	s.saveLocked()
}

// UpdateQuantity mengubah quantity baris ke-index. Quantity <= 0 menghapus
// baris tersebut.
func (s *CartService) UpdateQuantity(index, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(index)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[s.activeKey]
	if index < 0 || index >= len(items) {
		return
	}
	items[index].Quantity = quantity
	items[index].LineTotal = items[index].UnitPrice * float64(quantity)
	s.carts[s.activeKey] = items
	s.saveLocked()
}

func (s *CartService) RemoveItem(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[s.activeKey]
	if index < 0 || index >= len(items) {
		return
	}
	s.carts[s.activeKey] = append(items[:index], items[index+1:]...)
	s.saveLocked()
}

// Clear membuang baris milik context aktif saja.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, s.activeKey)
	s.saveLocked()
}

// Items -> salinan baris context aktif, urutan insert dipertahankan.
func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.carts[s.activeKey]...)
}

func (s *CartService) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts[s.activeKey]) == 0
}

// Summary mengagregasi context aktif: subtotal, pajak terkandung, total,
// jumlah item. Harga sudah tax-inclusive jadi total = subtotal.
func (s *CartService) Summary() domain.CartSummary {
	items := s.Items()

	subtotal := domain.OrderSubtotal(items)
	var itemCount int
	for _, item := range items {
		itemCount += item.Quantity
	}

	return domain.CartSummary{
		Items:     items,
		Subtotal:  subtotal,
		TaxRate:   s.taxRate,
		Tax:       domain.TaxFromInclusive(subtotal, s.taxRate),
		Total:     subtotal,
		ItemCount: itemCount,
	}
}

func (s *CartService) loadFromStore() {
	if s.storePath == "" {
		return
	}
	data, err := os.ReadFile(s.storePath)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.ErrorLogger.Printf("Failed to read cart store %s: %v", s.storePath, err)
		}
		return
	}
	if err := json.Unmarshal(data, &s.carts); err != nil {
		utils.ErrorLogger.Printf("Cart store %s is corrupt, starting empty: %v", s.storePath, err)
		s.carts = make(map[string][]domain.CartItem)
	}
}

func (s *CartService) saveLocked() {
	if s.storePath == "" {
		return
	}
	data, err := json.Marshal(s.carts)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to marshal carts: %v", err)
		return
	}
	if err := os.WriteFile(s.storePath, data, 0644); err != nil {
		utils.ErrorLogger.Printf("Failed to write cart store %s: %v", s.storePath, err)
	}
}
