package handlers

import (
	"net/http"
	"strconv"

	"bookflow/clients"
	"bookflow/models"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the authenticated company-administration surface. Every
// handler is a pass-through to the owning service; the gateway adds
// nothing but cookie auth and error normalization.
type AdminHandler struct {
	Identity *clients.IdentityClient
	Booking  *clients.BookingClient
}

func NewAdminHandler(identity *clients.IdentityClient, booking *clients.BookingClient) *AdminHandler {
	return &AdminHandler{Identity: identity, Booking: booking}
}

func (h *AdminHandler) GetCompany(c *gin.Context) {
	company, err := h.Identity.GetCompany(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *AdminHandler) UpdateCompany(c *gin.Context) {
	var in models.Company
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid company payload"})
		return
	}
	company, err := h.Identity.UpdateCompany(c.Request.Context(), c.Param("companyId"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *AdminHandler) ListEmployees(c *gin.Context) {
	employees, err := h.Identity.ListEmployees(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (h *AdminHandler) CreateEmployee(c *gin.Context) {
	var in models.Employee
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid employee payload"})
		return
	}
	employee, err := h.Identity.CreateEmployee(c.Request.Context(), c.Param("companyId"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *AdminHandler) UpdateEmployee(c *gin.Context) {
	var in models.Employee
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid employee payload"})
		return
	}
	employee, err := h.Identity.UpdateEmployee(c.Request.Context(), c.Param("companyId"), c.Param("employeeId"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *AdminHandler) DeleteEmployee(c *gin.Context) {
	if err := h.Identity.DeleteEmployee(c.Request.Context(), c.Param("companyId"), c.Param("employeeId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListServices(c *gin.Context) {
	services, err := h.Booking.ListCompanyServices(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	var in models.Service
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service payload"})
		return
	}
	service, err := h.Booking.CreateService(c.Request.Context(), c.Param("companyId"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (h *AdminHandler) UpdateService(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("serviceId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service id"})
		return
	}
	var in models.Service
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service payload"})
		return
	}
	service, err := h.Booking.UpdateService(c.Request.Context(), c.Param("companyId"), serviceID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *AdminHandler) DeleteService(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("serviceId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service id"})
		return
	}
	if err := h.Booking.DeleteService(c.Request.Context(), c.Param("companyId"), serviceID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListServiceGroups(c *gin.Context) {
	groups, err := h.Booking.ListCompanyServiceGroups(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"serviceGroups": groups})
}

func (h *AdminHandler) CreateServiceGroup(c *gin.Context) {
	var in models.ServiceGroup
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service group payload"})
		return
	}
	group, err := h.Booking.CreateServiceGroup(c.Request.Context(), c.Param("companyId"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (h *AdminHandler) GetWeeklySchedule(c *gin.Context) {
	weekly, err := h.Booking.GetWeeklySchedule(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeklySchedule": weekly})
}

func (h *AdminHandler) PutWeeklySchedule(c *gin.Context) {
	var in map[string][]models.ScheduleTimeSlot
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid schedule payload"})
		return
	}
	if err := h.Booking.PutWeeklySchedule(c.Request.Context(), c.Param("companyId"), in); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
