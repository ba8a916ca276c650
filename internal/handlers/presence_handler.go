package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fingertrack/internal/models"
	"fingertrack/internal/pdf"
	"fingertrack/internal/services"
)

type PresenceHandler struct {
	presences   services.PresenceService
	employes    services.EmployeService
	entreprises services.EntrepriseService
	reports     pdf.Generator
}

func NewPresenceHandler(
	presences services.PresenceService,
	employes services.EmployeService,
	entreprises services.EntrepriseService,
	reports pdf.Generator,
) *PresenceHandler {
	return &PresenceHandler{presences: presences, employes: employes, entreprises: entreprises, reports: reports}
}

// @Summary      Record a presence event
// @Tags         Presences
// @Accept       json
// @Produce      json
// @Param        presence  body      models.Presence  true  "Check-in or check-out"
// @Success      201       {object}  models.Presence
// @Failure      404       {object}  map[string]string
// @Security     BearerAuth
// @Router       /presences [post]
func (h *PresenceHandler) Record(c *gin.Context) {
	var presence models.Presence
	if err := c.ShouldBindJSON(&presence); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if presence.Type != models.PresenceCheckIn && presence.Type != models.PresenceCheckOut {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be CHECK_IN or CHECK_OUT"})
		return
	}
	created, err := h.presences.Record(&presence)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PresenceHandler) ListByEmploye(c *gin.Context) {
	idEmploye, ok := parseUUIDParam(c, "employeId")
	if !ok {
		return
	}
	from, to, ok := timeRange(c)
	if !ok {
		return
	}
	presences, err := h.presences.ListByEmploye(idEmploye, from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, presences)
}

func (h *PresenceHandler) ListByEntreprise(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}
	from, to, ok := timeRange(c)
	if !ok {
		return
	}
	presences, err := h.presences.ListByEntreprise(ident.CompanyID, from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, presences)
}

func (h *PresenceHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.presences.Delete(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Presence deleted"})
}

// @Summary      Export an attendance report as PDF
// @Tags         Presences
// @Produce      json
// @Param        from  query     string  false  "RFC3339 start"
// @Param        to    query     string  false  "RFC3339 end"
// @Success      200   {object}  map[string]string
// @Security     BearerAuth
// @Router       /presences/report/pdf [get]
func (h *PresenceHandler) ExportPDF(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid identity in context"})
		return
	}
	from, to, ok := timeRange(c)
	if !ok {
		return
	}
	now := time.Now().UTC()
	if to == nil {
		to = &now
	}
	if from == nil {
		monthAgo := now.AddDate(0, -1, 0)
		from = &monthAgo
	}

	presences, err := h.presences.ListByEntreprise(ident.CompanyID, from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}

	// One employee lookup per distinct id, not per row.
	names := map[string]*models.Employe{}
	rows := make([]pdf.AttendanceRow, 0, len(presences))
	for _, p := range presences {
		emp, ok := names[p.IDEmploye.String()]
		if !ok {
			emp, err = h.employes.GetByID(p.IDEmploye)
			if err != nil {
				abortWithError(c, err)
				return
			}
			names[p.IDEmploye.String()] = emp
		}
		rows = append(rows, pdf.AttendanceRow{
			EmployeeName: emp.DisplayName(),
			EmployeeID:   emp.EmployeeID,
			Type:         p.Type,
			Timestamp:    p.Timestamp,
			Methode:      p.Methode,
			Statut:       p.Statut,
		})
	}

	companyName := ident.CompanyID.String()
	if entreprise, err := h.entreprises.GetByID(ident.CompanyID); err == nil {
		companyName = entreprise.Nom
	}

	path, err := h.reports.GenerateAttendanceReport(pdf.AttendanceReportData{
		CompanyName: companyName,
		From:        *from,
		To:          *to,
		Rows:        rows,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("generate report: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"file": path})
}

func timeRange(c *gin.Context) (from, to *time.Time, ok bool) {
	parse := func(name string) (*time.Time, bool) {
		raw := c.Query(name)
		if raw == "" {
			return nil, true
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be RFC3339"})
			return nil, false
		}
		return &t, true
	}
	from, ok = parse("from")
	if !ok {
		return nil, nil, false
	}
	to, ok = parse("to")
	if !ok {
		return nil, nil, false
	}
	return from, to, true
}
