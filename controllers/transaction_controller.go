package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/resp"
	"github.com/parthdk16/Restaurant-Management-System-sub001/repository"
	"github.com/parthdk16/Restaurant-Management-System-sub001/services"
)

type TransactionController struct {
	Txns *services.TransactionService
}

func NewTransactionController(txns *services.TransactionService) *TransactionController {
	return &TransactionController{Txns: txns}
}

// filterFromQuery reads ?type=&status=&from=&to=&q=. Dates are
// YYYY-MM-DD; "to" is made exclusive by bumping it one day.
func filterFromQuery(c *gin.Context) (repository.TransactionFilter, bool) {
	f := repository.TransactionFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Search: c.Query("q"),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			resp.BadRequest(c, "invalid from date")
			return f, false
		}
		f.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			resp.BadRequest(c, "invalid to date")
			return f, false
		}
		f.To = t.AddDate(0, 0, 1)
	}
	return f, true
}

func (tc *TransactionController) List(c *gin.Context) {
	f, ok := filterFromQuery(c)
	if !ok {
		return
	}
	items, err := tc.Txns.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (tc *TransactionController) ExportCSV(c *gin.Context) {
	f, ok := filterFromQuery(c)
	if !ok {
		return
	}
	name := "transactions-" + time.Now().Format("20060102-150405") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Status(http.StatusOK)
	if err := tc.Txns.ExportCSV(c.Writer, f); err != nil {
		// headers are gone already; just stop writing
		c.Abort()
	}
}
