package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackr/budget-ledger/internal/core/ports/services"
)

// directoryHandler exposes the read-only reference directory used to populate
// department, project and category pickers.
type directoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

func newDirectoryHandler(directoryService portssvc.DirectorySvcFacade) *directoryHandler {
	return &directoryHandler{directoryService: directoryService}
}

// listDepartments godoc
// @Summary List departments
// @Tags directory
// @Produce  json
// @Success 200 {array} domain.Department
// @Router /directory/departments [get]
func (h *directoryHandler) listDepartments(c *gin.Context) {
	departments, err := h.directoryService.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

// listAccounts godoc
// @Summary List accounts
// @Tags directory
// @Produce  json
// @Success 200 {array} domain.Account
// @Router /directory/accounts [get]
func (h *directoryHandler) listAccounts(c *gin.Context) {
	accounts, err := h.directoryService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// listProjects godoc
// @Summary List projects of a department
// @Tags directory
// @Produce  json
// @Param   departmentID path string true "Department ID"
// @Success 200 {array} domain.Project
// @Router /directory/departments/{departmentID}/projects [get]
func (h *directoryHandler) listProjects(c *gin.Context) {
	projects, err := h.directoryService.ListProjects(c.Request.Context(), c.Param("departmentID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// listCategories godoc
// @Summary List categories of a project
// @Tags directory
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Success 200 {array} domain.CategoryRef
// @Router /directory/projects/{projectID}/categories [get]
func (h *directoryHandler) listCategories(c *gin.Context) {
	categories, err := h.directoryService.ListCategories(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func registerDirectoryRoutes(group *gin.RouterGroup, directoryService portssvc.DirectorySvcFacade) {
	h := newDirectoryHandler(directoryService)
	group.GET("/directory/departments", h.listDepartments)
	group.GET("/directory/accounts", h.listAccounts)
	group.GET("/directory/departments/:departmentID/projects", h.listProjects)
	group.GET("/directory/projects/:projectID/categories", h.listCategories)
}
