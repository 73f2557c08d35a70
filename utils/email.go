package utils

import (
	"bytes"
	"html/template"
	"log"
	"strconv"
	"time"

	"github.com/jos3lo89/ice-pos-server/config"
	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

// SessionCloseEmailData feeds the reconciliation summary template
type SessionCloseEmailData struct {
	Cajero             string
	OpenedAt           time.Time
	ClosedAt           time.Time
	Opening            decimal.Decimal
	SalesCash          decimal.Decimal
	ManualTransactions decimal.Decimal
	Expected           decimal.Decimal
	Actual             decimal.Decimal
	Difference         decimal.Decimal
	IsBalanced         bool
}

const sessionCloseTemplate = `
<h2>Cierre de caja — {{.Cajero}}</h2>
<p>Apertura: {{.OpenedAt.Format "02/01/2006 15:04"}} · Cierre: {{.ClosedAt.Format "02/01/2006 15:04"}}</p>
<table border="1" cellpadding="6">
  <tr><td>Saldo inicial</td><td>{{.Opening}}</td></tr>
  <tr><td>Ventas en efectivo</td><td>{{.SalesCash}}</td></tr>
  <tr><td>Movimientos manuales</td><td>{{.ManualTransactions}}</td></tr>
  <tr><td>Esperado</td><td>{{.Expected}}</td></tr>
  <tr><td>Contado</td><td>{{.Actual}}</td></tr>
  <tr><td><b>Diferencia</b></td><td><b>{{.Difference}}</b></td></tr>
</table>
{{if .IsBalanced}}<p>La caja cuadró.</p>{{else}}<p><b>La caja NO cuadró.</b></p>{{end}}
`

// SendSessionCloseEmail mails the drawer reconciliation summary to the
// supervisor (async, failures only logged — never fails the close).
func SendSessionCloseEmail(to string, data SessionCloseEmailData) {
	go func() {
		tmpl, err := template.New("session_close").Parse(sessionCloseTemplate)
		if err != nil {
			log.Printf("Error parsing session close template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Error rendering session close email: %v", err)
			return
		}

		host := config.Config("SMTP_HOST")
		port, _ := strconv.Atoi(config.Config("SMTP_PORT"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("SMTP_FROM")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Cierre de caja — "+data.Cajero)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Error sending session close email: %v", err)
		}
	}()
}
