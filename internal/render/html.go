package render

import (
	"bytes"
	"fmt"
	"html/template"
)

var docFuncs = template.FuncMap{
	"money":        money,
	"moneyOrBlank": moneyOrBlank,
}

const baseStyle = `
  body { font-family: Helvetica, Arial, sans-serif; font-size: 11px; color: #111; margin: 32px; }
  h1 { font-size: 18px; margin: 0 0 2px 0; }
  h2 { font-size: 13px; margin: 16px 0 4px 0; }
  table { border-collapse: collapse; width: 100%; }
  th { text-align: left; border-bottom: 1px solid #444; padding: 3px 6px; font-size: 10px; text-transform: uppercase; }
  td { padding: 3px 6px; border-bottom: 1px solid #ddd; }
  td.num, th.num { text-align: right; }
  tr.subtotal td { border-top: 1px solid #444; border-bottom: none; font-weight: bold; }
  tr.grand td { border-top: 2px solid #111; border-bottom: none; font-weight: bold; }
  .muted { color: #666; }
  .page-break { page-break-after: always; }
`

var registerTmpl = template.Must(template.New("register").Funcs(docFuncs).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>` + baseStyle + `</style></head>
<body>
<h1>Invoice Register</h1>
<div class="muted">{{.CategoryDescription}} &mdash; {{.PeriodLabel}}</div>
{{range .Sections}}
<h2>{{.Name}}</h2>
<table>
<tr><th>Invoice #</th><th>Account</th><th>Email</th><th class="num">Sales</th><th class="num">Tax</th><th class="num">Adjustments</th><th class="num">Total</th></tr>
{{range .Accounts}}
<tr>
  <td>{{.InvoiceNo}}</td>
  <td>{{.Description}}</td>
  <td>{{.Email}}</td>
  <td class="num">{{money .Sales}}</td>
  <td class="num">{{money .Tax}}</td>
  <td class="num">{{moneyOrBlank .Adjustments}}</td>
  <td class="num">{{money .Total}}</td>
</tr>
{{end}}
{{if .HasSubtotal}}
<tr class="subtotal">
  <td colspan="3">Subtotal</td>
  <td class="num">{{money .Subtotal.Sales}}</td>
  <td class="num">{{money .Subtotal.Tax}}</td>
  <td class="num">{{moneyOrBlank .Subtotal.Adjustments}}</td>
  <td class="num">{{money .Subtotal.Total}}</td>
</tr>
{{end}}
</table>
{{end}}
<table style="margin-top:16px">
<tr class="grand">
  <td>Grand Total</td>
  <td class="num">{{money .Totals.Sales}}</td>
  <td class="num">{{money .Totals.Tax}}</td>
  <td class="num">{{moneyOrBlank .Totals.Adjustments}}</td>
  <td class="num">{{money .Totals.Total}}</td>
</tr>
</table>
</body>
</html>`))

type invoicesPage struct {
	InvoicesInput
	Pages []InvoiceView
}

var invoicesTmpl = template.Must(template.New("invoices").Funcs(docFuncs).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>` + baseStyle + `
  .head { display: flex; justify-content: space-between; }
  .bill-to { margin: 12px 0; }
</style></head>
<body>
{{$top := .}}
{{range $i, $inv := .Pages}}
{{if $i}}<div class="page-break"></div>{{end}}
<div class="head">
  <div>
    <h1>{{$top.Lab.Name}}</h1>
    <div class="muted">{{$top.Lab.Addr1}}{{if $top.Lab.Addr2}}, {{$top.Lab.Addr2}}{{end}}<br>
    {{$top.Lab.City}}, {{$top.Lab.State}} {{$top.Lab.Zip}}<br>
    {{$top.Lab.Phone}}{{if $top.Lab.Fax}} &middot; Fax {{$top.Lab.Fax}}{{end}}</div>
  </div>
  <div style="text-align:right">
    <h1>INVOICE</h1>
    <div>Invoice # <b>{{$inv.InvoiceNo}}</b></div>
    <div>Date: {{$top.InvoiceDate}}</div>
    <div>Billing period: {{$top.PeriodLabel}}</div>
    {{if $inv.CustomerLedgerCode}}<div>Customer: {{$inv.CustomerLedgerCode}}</div>{{end}}
  </div>
</div>
<div class="bill-to">
  <b>Bill To:</b><br>
  {{if $inv.Provider}}
    {{$inv.Provider.Name}}<br>
    {{$inv.Provider.Addr1}}{{if $inv.Provider.Addr2}}, {{$inv.Provider.Addr2}}{{end}}<br>
    {{$inv.Provider.City}}, {{$inv.Provider.State}} {{$inv.Provider.Zip}}<br>
    <span class="muted">For account {{$inv.Account.Name}} - #{{$inv.AccountNo}}</span>
  {{else}}
    {{$inv.Account.Name}} - #{{$inv.AccountNo}}<br>
    {{$inv.Account.Addr1}}{{if $inv.Account.Addr2}}, {{$inv.Account.Addr2}}{{end}}<br>
    {{$inv.Account.City}}, {{$inv.Account.State}} {{$inv.Account.Zip}}
  {{end}}
</div>
<table>
<tr><th>Job #</th><th>Entered</th><th>Shipped</th><th>Patient</th><th class="num">Price</th></tr>
{{range $inv.Jobs}}
<tr>
  <td>{{.JobID}}</td>
  <td>{{.EnterDate}}</td>
  <td>{{.ShipDate}}</td>
  <td>{{.PatientName}}</td>
  <td class="num">{{money .Price}}</td>
</tr>
{{end}}
<tr class="subtotal"><td colspan="4">Subtotal</td><td class="num">{{money $inv.Subtotal}}</td></tr>
{{if $inv.TaxRatePct}}<tr><td colspan="4">Sales tax ({{$inv.TaxRatePct}}%)</td><td class="num">{{money $inv.Tax}}</td></tr>{{end}}
{{range $inv.Adjustments}}
<tr><td colspan="2">{{.Kind}} {{.Reference}}</td><td colspan="2">{{.Description}}</td><td class="num">{{money .Amount}}</td></tr>
{{end}}
<tr class="grand"><td colspan="4">Total Due</td><td class="num">{{money $inv.InvoiceTotal}}</td></tr>
</table>
<div class="muted" style="margin-top:12px">
Questions? {{$top.Lab.ContactName}}{{if $top.Lab.ContactTitle}}, {{$top.Lab.ContactTitle}}{{end}} &middot; {{$top.Lab.Email}}
</div>
{{end}}
</body>
</html>`))

var creditTmpl = template.Must(template.New("credit").Funcs(docFuncs).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>` + baseStyle + `</style></head>
<body>
<h1>Credit Memo Request</h1>
<div class="muted">{{.Lab.Name}} &middot; Account #{{.AccountNo}} &middot; {{.Date}}</div>
<table style="margin-top:16px">
<tr><th>Type</th><th>Reference</th><th>Description</th><th class="num">Amount</th></tr>
{{range .Adjustments}}
<tr>
  <td>{{.Kind}}</td>
  <td>{{.Reference}}</td>
  <td>{{.Description}}</td>
  <td class="num">{{money .Amount}}</td>
</tr>
{{end}}
</table>
<div style="margin-top:24px">
Requested by: {{.Lab.ContactName}}{{if .Lab.ContactTitle}}, {{.Lab.ContactTitle}}{{end}}<br>
{{.Lab.Email}} &middot; {{.Lab.Phone}}
</div>
</body>
</html>`))

func buildRegisterHTML(in RegisterInput) (string, error) {
	var buf bytes.Buffer
	if err := registerTmpl.Execute(&buf, in); err != nil {
		return "", fmt.Errorf("render register html: %w", err)
	}
	return buf.String(), nil
}

func buildInvoicesHTML(in InvoicesInput, pages []InvoiceView) (string, error) {
	var buf bytes.Buffer
	if err := invoicesTmpl.Execute(&buf, invoicesPage{InvoicesInput: in, Pages: pages}); err != nil {
		return "", fmt.Errorf("render invoices html: %w", err)
	}
	return buf.String(), nil
}

func buildCreditHTML(in CreditInput) (string, error) {
	var buf bytes.Buffer
	if err := creditTmpl.Execute(&buf, in); err != nil {
		return "", fmt.Errorf("render credit memo html: %w", err)
	}
	return buf.String(), nil
}
