package handlers

import (
	"log"
	"net/http"

	"djurdata-ai/internal/apis/dtos"
	"djurdata-ai/internal/services"

	"github.com/gin-gonic/gin"
)

type AnimalHandler struct {
	animalService services.IAnimalService
}

func NewAnimalHandler(animalService services.IAnimalService) *AnimalHandler {
	if animalService == nil {
		log.Fatal("Animal service cannot be nil")
	}
	return &AnimalHandler{
		animalService: animalService,
	}
}

// @Summary List animals
// @Description List all animals, optionally filtered by search term
// @Produce json
// @Success 200 {object} dtos.Response
func (h *AnimalHandler) List(c *gin.Context) {
	var req dtos.SearchAnimalsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusBadRequest, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	animals, statusCode, err := h.animalService.Search(req.Query)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Data:    animals,
	})
}

// @Summary Animal details
// @Description Full record for one animal: requirements, food, diseases, warnings, checklists
// @Produce json
// @Success 200 {object} dtos.Response
func (h *AnimalHandler) Details(c *gin.Context) {
	animalID := c.Param("id")

	details, statusCode, err := h.animalService.GetDetails(animalID)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Data:    details,
	})
}

// @Summary Animal checklists
// @Description Checklist templates for one animal
// @Produce json
// @Success 200 {object} dtos.Response
func (h *AnimalHandler) Checklists(c *gin.Context) {
	animalID := c.Param("id")

	checklists, statusCode, err := h.animalService.GetChecklists(animalID)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Data:    checklists,
	})
}
