package services

import (
	"time"

	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/models"
	"github.com/yeremiapane/bistro-pos/repository"
	"github.com/yeremiapane/bistro-pos/utils"
)

// TableService mengelola meja dan menjaga status meja tetap konsisten dengan
// lifecycle order dine-in yang menempatinya.
type TableService struct {
	tableRepo repository.TableRepository
	registry  *CodeRegistry
}

func NewTableService(tableRepo repository.TableRepository, registry *CodeRegistry) *TableService {
	return &TableService{tableRepo: tableRepo, registry: registry}
}

func (s *TableService) GetAll() ([]models.Table, error) {
	return s.tableRepo.FindAll()
}

func (s *TableService) GetByID(id uint) (*models.Table, error) {
	table, err := s.tableRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, domain.NewNotFoundError("table", "id %d", id)
	}
	return table, nil
}

func (s *TableService) Create(tableNumber string, seats int) (*models.Table, error) {
	freeStatusID, err := s.registry.Resolve(domain.CodeTypeTableStatus, domain.TableFree)
	if err != nil {
		return nil, err
	}

	table := models.Table{
		TableNumber: tableNumber,
		Seats:       seats,
		StatusID:    freeStatusID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.tableRepo.Create(&table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *TableService) UpdateStatus(tableID, statusID uint) error {
	table, err := s.tableRepo.FindByID(tableID)
	if err != nil {
		return err
	}
	if table == nil {
		return domain.NewNotFoundError("table", "id %d", tableID)
	}
	return s.tableRepo.UpdateStatus(tableID, statusID)
}

func (s *TableService) Delete(id uint) error {
	return s.tableRepo.Delete(id)
}

// SyncTableForOrder menyelaraskan status meja dengan status order-nya.
// Aturan: DINE_IN + status non-terminal => OCCUPIED, DINE_IN + status terminal
// (COMPLETED/CANCELLED) => FREE, order type lain => tidak menyentuh meja.
func (s *TableService) SyncTableForOrder(typeCode, statusCode string, tableID *uint) error {
	if typeCode != domain.TypeDineIn || tableID == nil {
		return nil
	}

	target := domain.TableOccupied
	if domain.IsFinalStatus(statusCode) {
		target = domain.TableFree
	}

	statusID, err := s.registry.Resolve(domain.CodeTypeTableStatus, target)
	if err != nil {
		return err
	}

	if err := s.tableRepo.UpdateStatus(*tableID, statusID); err != nil {
		return err
	}

	utils.InfoLogger.Printf("Table %d status synced to %s (order status=%s)", *tableID, target, statusCode)
	return nil
}
