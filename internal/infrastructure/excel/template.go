package excel

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/jhoicas/turnover-api/internal/domain"
)

// Template variante de plantilla reconocida en un archivo subido.
type Template string

const (
	// TemplateHorizontal facturación agregada: 运费 / 其他费用 / 总费用.
	TemplateHorizontal Template = "horizontal"
	// TemplateFeeBreakdown facturación desglosada por concepto: 运输费 / 操作费 / 燃油附加费 / ...
	TemplateFeeBreakdown Template = "fee_breakdown"
)

// minScore proporción mínima de columnas de la firma que deben aparecer en el header.
const minScore = 0.6

// templateSignatures columnas características de cada variante (ya normalizadas).
// Ambas comparten las columnas base de la orden; las de cargos las distinguen.
var templateSignatures = map[Template][]string{
	TemplateFeeBreakdown: {
		"订单号", "客户代码", "订单内件数", "出货时间",
		"运输费(USD)", "操作费(USD)", "燃油附加费(USD)", "包材费用(USD)",
	},
	TemplateHorizontal: {
		"订单号", "客户代码", "订单内件数", "出货时间",
		"运费(USD)", "其他费用(USD)", "总费用(USD)",
	},
}

// templateOrder orden de evaluación; en empate gana la primera (la desglosada,
// que es la firma más específica).
var templateOrder = []Template{TemplateFeeBreakdown, TemplateHorizontal}

// foldHeader normaliza un encabezado: pliega caracteres de ancho completo
// (（ＵＳＤ） → (USD)) y elimina espacios. Los exports del WMS mezclan ambos anchos.
func foldHeader(s string) string {
	folded := width.Narrow.String(s)
	folded = strings.ReplaceAll(folded, " ", "")
	folded = strings.ReplaceAll(folded, "　", "")
	return folded
}

// DetectTemplate identifica la variante por solapamiento de encabezados contra
// cada firma. Gana el mejor puntaje estricto; por debajo del mínimo el archivo
// no se reconoce y no se escribe nada.
func DetectTemplate(headers []string) (Template, error) {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		if folded := foldHeader(h); folded != "" {
			present[folded] = true
		}
	}

	var best Template
	bestScore := 0.0
	for _, tpl := range templateOrder {
		sig := templateSignatures[tpl]
		matches := 0
		for _, col := range sig {
			if present[col] {
				matches++
			}
		}
		score := float64(matches) / float64(len(sig))
		if score > bestScore {
			best = tpl
			bestScore = score
		}
	}

	if bestScore < minScore {
		return "", domain.ErrUnknownTemplate
	}
	return best, nil
}
