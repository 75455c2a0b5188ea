package receipt

import (
	"bytes"
	"context"
	"html/template"

	"github.com/jhoicas/Clinica-api/internal/application/cashier"
)

// HTMLRenderer recibo imprimible desde el navegador.
type HTMLRenderer struct{}

// NewHTMLRenderer construye el renderizador.
func NewHTMLRenderer() *HTMLRenderer { return &HTMLRenderer{} }

// ContentType del documento generado.
func (*HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

type htmlItemView struct {
	Label     string
	Quantity  int64
	UnitPrice string
	Total     string
}

type htmlView struct {
	HospitalName    string
	HospitalAddress string
	HospitalPhone   string
	HospitalTaxID   string
	InvoiceID       string
	PatientName     string
	IssuedOn        string
	Items           []htmlItemView
	Subtotal        string
	Paid            string
	SettleLabel     string
	SettleAmount    string
	PaymentMethod   string
	PaymentDatetime string
}

var htmlTmpl = template.Must(template.New("recibo").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Recibo {{.InvoiceID}}</title>
<style>
body { font-family: "Courier New", monospace; max-width: 420px; margin: 1em auto; }
h1 { font-size: 1.1em; text-align: center; margin: 0; }
p.centro { text-align: center; margin: 0.1em 0; }
table { width: 100%; border-collapse: collapse; margin-top: 0.5em; }
td, th { padding: 0.15em 0.3em; text-align: left; }
td.num, th.num { text-align: right; }
tr.total td { border-top: 1px solid #000; font-weight: bold; }
</style>
</head>
<body>
<h1>{{.HospitalName}}</h1>
{{if .HospitalAddress}}<p class="centro">{{.HospitalAddress}}</p>{{end}}
{{if .HospitalPhone}}<p class="centro">Tel: {{.HospitalPhone}}</p>{{end}}
{{if .HospitalTaxID}}<p class="centro">NIT: {{.HospitalTaxID}}</p>{{end}}
<p class="centro">RECIBO DE CAJA</p>
<p>Recibo: {{.InvoiceID}}<br>
Paciente: {{.PatientName}}<br>
Fecha: {{.IssuedOn}}</p>
<table>
<tr><th>Detalle</th><th class="num">Cant.</th><th class="num">P. Unit.</th><th class="num">Total</th></tr>
{{range .Items}}<tr><td>{{.Label}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.Total}}</td></tr>
{{end}}<tr class="total"><td colspan="3">SUBTOTAL</td><td class="num">{{.Subtotal}}</td></tr>
<tr><td colspan="3">PAGADO</td><td class="num">{{.Paid}}</td></tr>
<tr class="total"><td colspan="3">{{.SettleLabel}}</td><td class="num">{{.SettleAmount}}</td></tr>
</table>
{{if .PaymentMethod}}<p>Medio de pago: {{.PaymentMethod}}</p>{{end}}
{{if .PaymentDatetime}}<p>Pago: {{.PaymentDatetime}}</p>{{end}}
</body>
</html>
`))

// Render genera el recibo en HTML a partir de la misma instantánea que los
// demás formatos.
func (*HTMLRenderer) Render(_ context.Context, data cashier.ReceiptData) ([]byte, error) {
	view := htmlView{
		HospitalName:    data.Hospital.Name,
		HospitalAddress: data.Hospital.Address,
		HospitalPhone:   data.Hospital.Phone,
		HospitalTaxID:   data.Hospital.TaxID,
		InvoiceID:       data.InvoiceID,
		PatientName:     orDash(data.PatientName),
		Subtotal:        formatAmount(data.Totals.Subtotal),
		Paid:            formatAmount(data.Paid),
		PaymentMethod:   data.PaymentMethod,
	}
	view.IssuedOn = emDash
	if !data.IssuedOn.IsZero() {
		view.IssuedOn = data.IssuedOn.Format("02/01/2006")
	}
	if !data.PaymentDatetime.IsZero() {
		view.PaymentDatetime = data.PaymentDatetime.Format("02/01/2006 15:04")
	}
	label, amount := settlementLine(data)
	view.SettleLabel = label
	view.SettleAmount = formatAmount(amount)

	for _, item := range data.Items {
		view.Items = append(view.Items, htmlItemView{
			Label:     item.Label,
			Quantity:  item.Quantity,
			UnitPrice: formatAmount(item.UnitPrice),
			Total:     formatAmount(item.Total()),
		})
	}

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
