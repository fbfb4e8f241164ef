package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parthdk16/Restaurant-Management-System-sub001/entity"
	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/resp"
	"github.com/parthdk16/Restaurant-Management-System-sub001/services"
)

type TableController struct {
	Tables   *services.TableService
	Checkout *services.CheckoutService
}

func NewTableController(tables *services.TableService, checkout *services.CheckoutService) *TableController {
	return &TableController{Tables: tables, Checkout: checkout}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.Tables.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tables})
}

type createTableReq struct {
	Number   int    `json:"number" binding:"required,min=1"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func (tc *TableController) Create(c *gin.Context) {
	var req createTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t := entity.Table{Number: req.Number, Name: req.Name, Capacity: req.Capacity}
	if err := tc.Tables.Create(&t); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, t)
}

type updateTableReq struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func (tc *TableController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := tc.Tables.Update(id, req.Name, req.Number, req.Capacity)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

func (tc *TableController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := tc.Tables.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ----- Session / state machine -----

type statusReq struct {
	Status       string `json:"status" binding:"required"`
	CustomerName string `json:"customerName"`
	Guests       int    `json:"guests"`
}

// SetStatus drives occupy and the manual overrides from one endpoint,
// the way the dashboard's table card presents them.
func (tc *TableController) SetStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var err error
	if req.Status == "occupied" {
		err = tc.Tables.Occupy(id, req.CustomerName, req.Guests)
	} else {
		err = tc.Tables.SetStatus(id, req.Status)
	}
	if err != nil {
		fail(c, err)
		return
	}
	tc.session(c, id)
}

func (tc *TableController) Session(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	tc.session(c, id)
}

func (tc *TableController) session(c *gin.Context, id uint) {
	view, err := tc.Tables.View(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, view)
}

type addItemReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

func (tc *TableController) AddItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := tc.Tables.AddItem(id, req.MenuItemID); err != nil {
		fail(c, err)
		return
	}
	tc.session(c, id)
}

type updateLineReq struct {
	Delta *int    `json:"delta"`
	Note  *string `json:"note"`
}

// UpdateLine handles quantity bumps and note edits on one cart line.
func (tc *TableController) UpdateLine(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var req updateLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Delta == nil && req.Note == nil {
		resp.BadRequest(c, "nothing to update")
		return
	}
	if req.Delta != nil {
		if err := tc.Tables.ChangeQty(id, itemID, *req.Delta); err != nil {
			fail(c, err)
			return
		}
	}
	if req.Note != nil {
		if err := tc.Tables.SetNote(id, itemID, *req.Note); err != nil {
			fail(c, err)
			return
		}
	}
	tc.session(c, id)
}

type splitReq struct {
	SplitCount int `json:"splitCount" binding:"required"`
}

func (tc *TableController) SetSplit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req splitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := tc.Tables.SetSplit(id, req.SplitCount); err != nil {
		fail(c, err)
		return
	}
	tc.session(c, id)
}

func (tc *TableController) GenerateBill(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := tc.Tables.GenerateBill(id); err != nil {
		fail(c, err)
		return
	}
	tc.session(c, id)
}

type checkoutReq struct {
	PaymentMethod string `json:"paymentMethod"`
}

func (tc *TableController) CheckoutTable(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		resp.BadRequest(c, err.Error())
		return
	}
	order, txn, err := tc.Checkout.Checkout(id, req.PaymentMethod)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"order": order, "transaction": txn})
}
