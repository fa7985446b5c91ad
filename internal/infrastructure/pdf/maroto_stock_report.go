// Package pdf genera el listado de stock en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                  │  Fecha de generación      │
//	│  FILTROS aplicados (si hay)                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Nombre | Categoría | Centro | Cantidad          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de artículos y unidades                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/application/usecase"
)

var _ usecase.StockReportGenerator = (*MarotoStockReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// ── Generator ─────────────────────────────────────────────────────────────────

const (
	coreFontFamily = "helvetica"
	utf8FontFamily = "inventario-utf8"
)

// MarotoStockReport implementa usecase.StockReportGenerator usando Maroto v2.
//
// La fuente por defecto es helvetica, que solo cubre Latin-1: nombres y regiones en
// japonés salen ilegibles hasta registrar un TTF UTF-8 con LoadUTF8FontFile o UseUTF8Font.
type MarotoStockReport struct {
	author string
	family string
	fonts  []*entity.CustomFont
}

// NewMarotoStockReport construye el generador; author se escribe en los metadatos del PDF.
func NewMarotoStockReport(author string) *MarotoStockReport {
	return &MarotoStockReport{author: author, family: coreFontFamily}
}

// LoadUTF8FontFile lee un TTF (por ejemplo Noto Sans JP) y lo usa como fuente del listado.
func (g *MarotoStockReport) LoadUTF8FontFile(path string) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("pdf: leer fuente %s: %w", path, err)
	}
	return g.UseUTF8Font(ttf)
}

// UseUTF8Font registra ttf para los estilos normal y negrita.
func (g *MarotoStockReport) UseUTF8Font(ttf []byte) error {
	if len(ttf) == 0 {
		return errors.New("pdf: fuente vacía")
	}
	fonts, err := repository.New().
		AddUTF8FontFromBytes(utf8FontFamily, fontstyle.Normal, ttf).
		AddUTF8FontFromBytes(utf8FontFamily, fontstyle.Bold, ttf).
		Load()
	if err != nil {
		return fmt.Errorf("pdf: registrar fuente: %w", err)
	}
	g.fonts = fonts
	g.family = utf8FontFamily
	return nil
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(ctx context.Context, report usecase.StockReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithCustomFonts(g.fonts).
		WithDefaultFont(&props.Font{Family: g.family, Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(filterRows(report.Filters)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(report.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar listado: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report usecase.StockReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func filterRows(filters []string) []core.Row {
	if len(filters) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin filtros", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}
	rows := make([]core.Row, 0, len(filters))
	for _, f := range filters {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("• "+f, props.Text{Size: 8, Color: colorGray, Top: 0.5}),
		)))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Nombre", 4, align.Left),
		h("Categoría", 3, align.Left),
		h("Centro", 2, align.Left),
		h("Cantidad", 2, align.Right),
	)
}

// tableItemRows una fila por artículo, con fondo alterno.
func tableItemRows(items []dto.StockResponse) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(10).Add(col.New(12).Add(
			text.New(dto.NoResultsMessage, props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		r := row.New(7).Add(
			col.New(1).Add(text.New(strconv.FormatInt(it.ID, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(it.CategoryName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.CenterName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatThousands(it.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

func totalsRow(items []dto.StockResponse) core.Row {
	total := 0
	for _, it := range items {
		total += it.Amount
	}
	return row.New(10).Add(
		col.New(8).Add(text.New(fmt.Sprintf("Artículos: %d", len(items)), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary,
		})),
		col.New(4).Add(text.New("Unidades: "+formatThousands(total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1, Color: colorPrimary,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000"
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	l := len(s)
	if l <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, l+l/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
