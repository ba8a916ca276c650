package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"fingertrack/internal/models"
)

// Generator — интерфейс (удобно мокать в тестах)
type Generator interface {
	GenerateAttendanceReport(data AttendanceReportData) (string, error)
}

// ReportGenerator — реализация
type ReportGenerator struct {
	RootDir  string // корень хранения, например "./files"
	FontPath string // путь до TTF, например "assets/fonts/DejaVuSans.ttf"
	fontName string // внутреннее имя шрифта в PDF
}

type AttendanceReportData struct {
	CompanyName string
	From        time.Time
	To          time.Time
	Rows        []AttendanceRow
	Filename    string // имя файла (без путей); если пусто — сгенерируем
}

type AttendanceRow struct {
	EmployeeName string
	EmployeeID   string
	Type         string
	Timestamp    time.Time
	Methode      string
	Statut       string
}

func NewReportGenerator(rootDir, fontPath string) *ReportGenerator {
	return &ReportGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: "DejaVu",
	}
}

func (g *ReportGenerator) GenerateAttendanceReport(data AttendanceReportData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("presences_%s.pdf", data.From.Format("2006-01-02"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Rapport de présence", false)
	pdf.SetAuthor("FingerTrack", false)
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)

	g.addUTF8Font(pdf)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "RAPPORT DE PRÉSENCE", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("%s  •  %s — %s",
		data.CompanyName,
		data.From.Format("02.01.2006"),
		data.To.Format("02.01.2006"),
	)
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Résumé")
	checkIns, checkOuts, retards := summarize(data.Rows)
	g.kvLine(pdf, "Pointages", fmt.Sprintf("%d", len(data.Rows)))
	g.kvLine(pdf, "Entrées", fmt.Sprintf("%d", checkIns))
	g.kvLine(pdf, "Sorties", fmt.Sprintf("%d", checkOuts))
	g.kvLine(pdf, "Retards", fmt.Sprintf("%d", retards))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Détail")
	g.tableHeader(pdf)
	pdf.SetFont(g.fontName, "", 9)
	fill := false
	for _, row := range data.Rows {
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(45, 6, row.EmployeeName, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(25, 6, row.EmployeeID, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(20, 6, typeLabel(row.Type), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(38, 6, row.Timestamp.Format("02.01.2006 15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(26, 6, row.Methode, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(26, 6, row.Statut, "1", 1, "C", fill, 0, "")
		fill = !fill
	}

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(filepath.Base(absPath)), nil
}

func summarize(rows []AttendanceRow) (checkIns, checkOuts, retards int) {
	for _, row := range rows {
		switch row.Type {
		case models.PresenceCheckIn:
			checkIns++
		case models.PresenceCheckOut:
			checkOuts++
		}
		if row.Statut == models.PresenceStatutRetard {
			retards++
		}
	}
	return
}

func typeLabel(t string) string {
	switch t {
	case models.PresenceCheckIn:
		return "Entrée"
	case models.PresenceCheckOut:
		return "Sortie"
	}
	return t
}

// ===== helpers =====

func (g *ReportGenerator) tableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont(g.fontName, "B", 9)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(45, 7, "Employé", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Matricule", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(38, 7, "Horodatage", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Méthode", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Statut", "1", 1, "C", true, 0, "")
}

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(15, y, 195, y)
	pdf.SetY(y + 2)
}

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename) // безопасность
	return filepath.Join(g.RootDir, filename), nil
}

func (g *ReportGenerator) addUTF8Font(pdf *gofpdf.Fpdf) {
	// AddUTF8Font принимает путь до TTF
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}
