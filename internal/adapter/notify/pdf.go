package notify

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/shefazol/ordering/internal/core/domain"
)

// PDFRenderer writes the printable order document. The layout is fixed and
// right-to-left: business header, order id and date, customer block, delivery
// block, item table, footer. Hebrew glyphs need a UTF-8 TTF font; without a
// font path the renderer falls back to the built-in core font.
type PDFRenderer struct {
	outDir   string
	fontPath string
}

func NewPDFRenderer(outDir, fontPath string) *PDFRenderer {
	return &PDFRenderer{outDir: outDir, fontPath: fontPath}
}

// RenderOrder renders into a staging directory first so a failed render never
// leaves a partial artifact; the staging area is removed on every exit path.
func (r *PDFRenderer) RenderOrder(ctx context.Context, order domain.Order) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stagingDir, err := os.MkdirTemp("", "order-pdf-")
	if err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	pdf := fpdf.New("P", "mm", "A4", "")
	family := "Arial"
	if r.fontPath != "" {
		pdf.AddUTF8Font("hebrew", "", r.fontPath)
		family = "hebrew"
	}
	pdf.RTL()
	pdf.AddPage()

	line := func(size float64, align, text string) {
		pdf.SetFont(family, "", size)
		pdf.CellFormat(0, 7, text, "", 1, align, false, 0, "")
	}

	// Header
	line(18, "C", "שפע-זול - פרטי הזמנה")
	line(11, "C", "מספר הזמנה: "+order.ID)
	line(11, "C", "תאריך: "+formatDateHe(order.CreatedAt.Format("2006-01-02")))
	pdf.Ln(6)

	// Customer block
	line(14, "R", "פרטי לקוח")
	line(11, "R", "שם: "+order.CustomerName)
	line(11, "R", "טלפון: "+order.CustomerPhone)
	line(11, "R", "כתובת: "+order.CustomerAddress)
	if order.CustomerEmail != "" {
		line(11, "R", "דוא\"ל: "+order.CustomerEmail)
	}
	if order.CustomerNumber != "" {
		line(11, "R", "מספר לקוח: "+order.CustomerNumber)
	}
	pdf.Ln(6)

	// Delivery block
	line(14, "R", "פרטי הזמנה")
	line(11, "R", "תאריך משלוח: "+formatDateHe(order.DeliveryDate))
	line(11, "R", "סוג משלוח: "+deliveryTypeLabel(order.DeliveryType))
	if order.Notes != "" {
		line(11, "R", "הערות: "+order.Notes)
	}
	pdf.Ln(6)

	// Item table
	line(14, "R", "פריטים")
	pdf.SetFont(family, "", 11)
	pdf.SetFillColor(242, 242, 242)
	pdf.CellFormat(130, 8, "מוצר", "1", 0, "R", true, 0, "")
	pdf.CellFormat(60, 8, "כמות", "1", 1, "R", true, 0, "")
	for _, item := range order.Items {
		pdf.CellFormat(130, 8, item.ProductName, "1", 0, "R", false, 0, "")
		pdf.CellFormat(60, 8, fmt.Sprintf("%d", item.Quantity), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(10)

	// Footer
	line(12, "C", "תודה שקנית בשפע-זול!")

	staged := filepath.Join(stagingDir, "order.pdf")
	if err := pdf.OutputFileAndClose(staged); err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	rendered, err := os.ReadFile(staged)
	if err != nil {
		return "", fmt.Errorf("read staged pdf: %w", err)
	}

	final := filepath.Join(r.outDir, fmt.Sprintf("שפע-זול_הזמנה_%s.pdf", order.ID))
	if err := os.WriteFile(final, rendered, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	return final, nil
}
