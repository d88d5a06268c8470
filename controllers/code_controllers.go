package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/bistro-pos/services"
	"github.com/yeremiapane/bistro-pos/utils"
)

type CodeController struct {
	Registry *services.CodeRegistry
}

func NewCodeController(registry *services.CodeRegistry) *CodeController {
	return &CodeController{Registry: registry}
}

// GetByType -> seluruh entry satu code type, untuk layar admin/pengaturan.
func (cc *CodeController) GetByType(c *gin.Context) {
	codeType := c.Param("code_type")

	entries, err := cc.Registry.EntriesByType(codeType)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Code entries", entries)
}

// GetTranslation -> label satu entry di bahasa tertentu. Label yang hilang
// dikembalikan sebagai string kosong, bukan error.
func (cc *CodeController) GetTranslation(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	language := c.Query("lang")
	if language == "" {
		language = "en"
	}

	label, err := cc.Registry.Translate(id, language)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Translation", gin.H{
		"id":       id,
		"language": language,
		"label":    label,
	})
}

// SetActive -> toggle order type (atau entry lain) dari layar admin.
// Cache registry dimuat ulang sinkron sebelum respon dikirim.
func (cc *CodeController) SetActive(c *gin.Context) {
	var req struct {
		CodeType string `json:"code_type" binding:"required"`
		Code     string `json:"code" binding:"required"`
		IsActive *bool  `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Registry.SetActive(req.CodeType, req.Code, *req.IsActive); err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Code entry updated", gin.H{
		"code_type": req.CodeType,
		"code":      req.Code,
		"is_active": *req.IsActive,
	})
}
