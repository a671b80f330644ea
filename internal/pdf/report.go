package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"brainhealth/internal/models"
)

// Generator — интерфейс (удобно мокать в тестах)
type Generator interface {
	GenerateAssessmentReport(data ReportData) (string, error)
}

// ReportGenerator — реализация
type ReportGenerator struct {
	RootDir string // корень хранения, например "./files"
}

type ReportData struct {
	PatientName     string
	PatientAge      int
	Score           float64
	CognitiveScore  float64
	AssessedAt      time.Time
	Lifestyle       *models.LifestyleEntry
	Recommendations []*models.Recommendation
	Filename        string // имя файла (без путей); если пусто — сгенерируем
}

func NewReportGenerator(rootDir string) *ReportGenerator {
	return &ReportGenerator{RootDir: filepath.Clean(rootDir)}
}

func (g *ReportGenerator) GenerateAssessmentReport(data ReportData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("brain_health_report_%s.pdf", data.AssessedAt.Format("2006-01-02"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Brain Health Report", false)
	pdf.SetAuthor("BrainHealth", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "BRAIN HEALTH REPORT", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("Assessed on %s", data.AssessedAt.Format("02.01.2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)

	pdf.Ln(3)

	// ===== Пациент
	g.sectionTitle(pdf, "Patient")
	g.kvLine(pdf, "Name", data.PatientName)
	g.kvLine(pdf, "Age", fmt.Sprintf("%d", data.PatientAge))
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Баллы
	g.sectionTitle(pdf, "Scores")
	g.kvLine(pdf, "Brain health score", fmt.Sprintf("%.1f / 100", data.Score))
	g.kvLine(pdf, "Last cognitive score", fmt.Sprintf("%.1f / 10", data.CognitiveScore))
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Образ жизни
	if data.Lifestyle != nil {
		g.sectionTitle(pdf, "Latest lifestyle entry")
		e := data.Lifestyle
		g.kvLine(pdf, "Date", e.EntryDate.Format("02.01.2006"))
		g.kvLine(pdf, "Physical activity", fmt.Sprintf("%d", e.PhysicalActivity))
		g.kvLine(pdf, "Healthy diet", fmt.Sprintf("%d", e.HealthyDiet))
		g.kvLine(pdf, "Social engagement", fmt.Sprintf("%d", e.SocialEngagement))
		g.kvLine(pdf, "Sleep quality", fmt.Sprintf("%d", e.GoodSleep))
		g.kvLine(pdf, "Smoking", fmt.Sprintf("%d", e.Smoking))
		g.kvLine(pdf, "Alcohol", fmt.Sprintf("%d", e.Alcohol))
		g.kvLine(pdf, "Stress", fmt.Sprintf("%d", e.Stress))
		pdf.Ln(2)
		g.hr(pdf)
	}

	// ===== Рекомендации
	g.sectionTitle(pdf, "Active recommendations")
	pdf.SetFont("Helvetica", "", 11)
	if len(data.Recommendations) == 0 {
		pdf.MultiCell(0, 6, "No active recommendations. Keep it up!", "", "L", false)
	}
	for i, rec := range data.Recommendations {
		line := fmt.Sprintf("%d. [%s/%s] %s — %s", i+1, rec.Category, rec.Priority, rec.Title, rec.Description)
		pdf.MultiCell(0, 6, line, "", "L", false)
	}

	// ===== Нумерация страниц
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ===== helpers =====

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(55, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	filename = filepath.Base(filename) // безопасность
	return filepath.Join(g.RootDir, filename), nil
}
