package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/parthdk16/Restaurant-Management-System-sub001/pkg/resp"
	"github.com/parthdk16/Restaurant-Management-System-sub001/services"
)

type DashboardController struct {
	Reports *services.ReportService
}

func NewDashboardController(reports *services.ReportService) *DashboardController {
	return &DashboardController{Reports: reports}
}

func (dc *DashboardController) Dashboard(c *gin.Context) {
	report, err := dc.Reports.Dashboard(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, report)
}
