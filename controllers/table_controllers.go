package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/bistro-pos/domain"
	"github.com/yeremiapane/bistro-pos/events"
	"github.com/yeremiapane/bistro-pos/services"
	"github.com/yeremiapane/bistro-pos/utils"
)

type TableController struct {
	Tables   *services.TableService
	Registry *services.CodeRegistry
}

func NewTableController(tables *services.TableService, registry *services.CodeRegistry) *TableController {
	return &TableController{Tables: tables, Registry: registry}
}

// CreateTable -> menambahkan meja baru (status awal FREE)
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber string `json:"table_number" binding:"required"`
		Seats       int    `json:"seats"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Seats <= 0 {
		req.Seats = 4
	}

	table, err := tc.Tables.Create(req.TableNumber, req.Seats)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s", table.TableNumber)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> menampilkan seluruh meja
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Tables.GetAll()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID, err := paramUint(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.GetByID(tableID)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTableStatus -> update status meja secara manual (mis. RESERVED).
// Status order dine-in tetap mengelola occupancy lewat lifecycle-nya sendiri.
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	tableID, err := paramUint(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"` // FREE / OCCUPIED / RESERVED
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	statusID, err := tc.Registry.Resolve(domain.CodeTypeTableStatus, req.Status)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	if err := tc.Tables.UpdateStatus(tableID, statusID); err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	events.PublishTableUpdate(tableID, statusID)
	utils.InfoLogger.Printf("Table %d status changed to %s", tableID, req.Status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", gin.H{
		"table_id":  tableID,
		"status_id": statusID,
	})
}

// DeleteTable -> menghapus meja
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID, err := paramUint(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if _, err := tc.Tables.GetByID(tableID); err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	if err := tc.Tables.Delete(tableID); err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", tableID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": tableID})
}
