package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/resp"
	"github.com/parthdk16/Restaurant-Management-System-sub001/services"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

func (mc *MenuController) List(c *gin.Context) {
	category := c.Query("category")
	availableOnly := c.Query("available") == "true"
	items, err := mc.Menu.List(category, availableOnly)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (mc *MenuController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	item, err := mc.Menu.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

type menuItemReq struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Description  string `json:"description"`
	Price        string `json:"price" binding:"required"`
	IsAvailable  *bool  `json:"isAvailable"`
	IsVegetarian bool   `json:"isVegetarian"`
	PhotoURL     string `json:"photoUrl"`
}

func (mc *MenuController) Create(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item := entity.MenuItem{
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		Price:        req.Price,
		IsAvailable:  true,
		IsVegetarian: req.IsVegetarian,
		PhotoURL:     req.PhotoURL,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if err := mc.Menu.Create(&item); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

func (mc *MenuController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	item, err := mc.Menu.Get(id)
	if err != nil {
		fail(c, err)
		return
	}

	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item.Name = req.Name
	item.Category = req.Category
	item.Description = req.Description
	item.Price = req.Price
	item.IsVegetarian = req.IsVegetarian
	if req.PhotoURL != "" {
		item.PhotoURL = req.PhotoURL
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if err := mc.Menu.Update(item); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := mc.Menu.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type availabilityReq struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

func (mc *MenuController) SetAvailability(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := mc.Menu.SetAvailability(id, *req.IsAvailable); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isAvailable": *req.IsAvailable})
}
