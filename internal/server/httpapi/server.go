// Package httpapi exposes the portal backend over REST: login, the employees
// collection and operational endpoints. Error bodies are always
// {"error": "..."}; the employee list is wrapped in {"data": [...]}.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/innovatech/employee-portal/internal/common"
	"github.com/innovatech/employee-portal/internal/logging"
	"github.com/innovatech/employee-portal/internal/server/services"
)

// Options tune the router. A zero RateLimitPerSecond disables rate limiting.
type Options struct {
	RateLimitPerSecond float64
	RateLimitBurst     int
}

type Server struct {
	auth      *services.AuthService
	employees *services.EmployeeService
	logger    logging.Logger
}

func NewServer(auth *services.AuthService, employees *services.EmployeeService, logger logging.Logger) *Server {
	return &Server{auth: auth, employees: employees, logger: logger}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.logger), Instrument())
	if opts.RateLimitPerSecond > 0 {
		r.Use(RateLimit(opts.RateLimitPerSecond, opts.RateLimitBurst))
	}

	r.GET("/health", s.health)
	r.POST("/auth/login", s.login)
	r.GET("/metrics", MetricsHandler())

	employees := r.Group("/employees", Identity())
	employees.GET("", s.listEmployees)
	employees.POST("", s.createEmployee)
	employees.GET("/:employeeId", s.getEmployee)
	employees.PUT("/:employeeId", s.updateEmployee)
	employees.DELETE("/:employeeId", s.deleteEmployee)

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	name, err := s.auth.VerifyLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Geen toegang"})
		case errors.Is(err, common.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login mislukt"})
		default:
			s.renderError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": req.Email, "name": name})
}

type employeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
}

func (s *Server) listEmployees(c *gin.Context) {
	list, err := s.employees.List(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (s *Server) createEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	e, err := s.employees.Create(c.Request.Context(), req.Name, req.Email, req.Department)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"employeeId": e.EmployeeID, "status": e.Status})
}

func (s *Server) getEmployee(c *gin.Context) {
	e, err := s.employees.Get(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) updateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	e, err := s.employees.Update(c.Request.Context(), c.Param("employeeId"), req.Name, req.Email, req.Department)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) deleteEmployee(c *gin.Context) {
	e, err := s.employees.Delete(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"deleted":    true,
		"employeeId": e.EmployeeID,
		"status":     e.Status,
	})
}

// renderError maps sentinel errors to HTTP status codes. Everything
// unrecognized is a 500 with a generic body; details go to the log only.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
	case errors.Is(err, common.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "employee is being deleted"})
	case errors.Is(err, common.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, common.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		s.logger.Error(c.Request.Context(), "request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
