package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/uncooked/internal/dtos"
	"github.com/justsurfingit/uncooked/internal/latex"
	"github.com/justsurfingit/uncooked/internal/services"
)

type ResumeHandler struct {
	ResumeService *services.ResumeService
}

func NewResumeHandler(r *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{ResumeService: r}
}

func (h *ResumeHandler) GetMaster(c *gin.Context) {
	master, err := h.ResumeService.GetMaster()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, master)
}

// SaveMaster is PUT /resume/master
func (h *ResumeHandler) SaveMaster(c *gin.Context) {
	var req dtos.ResumeContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	master, err := h.ResumeService.SaveMaster(req.Latex)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, master)
}

// Tailor is POST /resume/tailored
func (h *ResumeHandler) Tailor(c *gin.Context) {
	var req dtos.TailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	tailored, err := h.ResumeService.Tailor(req.JobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tailored)
}

func (h *ResumeHandler) GetTailored(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	tailored, err := h.ResumeService.GetTailored(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tailored)
}

func (h *ResumeHandler) UpdateTailored(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dtos.ResumeContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	tailored, err := h.ResumeService.UpdateTailored(id, req.Latex)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tailored)
}

func (h *ResumeHandler) DeleteTailored(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.ResumeService.DeleteTailored(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResumeHandler) ListByCompany(c *gin.Context) {
	resumes, err := h.ResumeService.ListTailoredByCompany(c.Param("company"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumes)
}

// MasterStructure is GET /resume/master/structure
func (h *ResumeHandler) MasterStructure(c *gin.Context) {
	h.structure(c, services.MasterRef)
}

// TailoredStructure is GET /resume/tailored/:id/structure
func (h *ResumeHandler) TailoredStructure(c *gin.Context) {
	h.structure(c, c.Param("id"))
}

func (h *ResumeHandler) structure(c *gin.Context, ref string) {
	text, err := h.ResumeService.Load(ref)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewDocumentView(latex.NewEditor(text, latex.WithReadOnly(true))))
}
