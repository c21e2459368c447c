// Package fixtures provides builders for document test data.
package fixtures

import (
	"contium/internal/document/models"
	"contium/internal/user"
)

// Actors matching the seeded directory.
var (
	Exporter     = user.Actor{ID: "user-001", Name: "Carlos Mendoza", Role: user.RoleExporter, Company: "Export Perú S.A.C."}
	Importer     = user.Actor{ID: "user-002", Name: "María García", Role: user.RoleImporter, Company: "Import Chile Ltda."}
	CustomsAgent = user.Actor{ID: "user-003", Name: "Roberto Sánchez", Role: user.RoleCustomsAgent, Company: "Agencia Aduanera Continental"}
	Authority    = user.Actor{ID: "user-004", Name: "Ana Torres", Role: user.RoleAuthority, Company: "SUNAT - Aduanas"}
)

// InvoiceBuilder provides a fluent interface for building invoice payloads.
// Totals are recomputed on Build so the payload is always consistent unless
// WithTotalValue overrides it.
type InvoiceBuilder struct {
	data          models.InvoiceData
	totalOverride *float64
}

// NewInvoice creates an invoice with no items.
func NewInvoice() *InvoiceBuilder {
	return &InvoiceBuilder{data: models.InvoiceData{
		InvoiceNumber: "FC-TEST-001",
		Exporter:      "Export Perú S.A.C.",
		Importer:      "Import Chile Ltda.",
		Currency:      "USD",
	}}
}

// WithItem appends a line with totalPrice = quantity * unitPrice.
func (b *InvoiceBuilder) WithItem(description string, quantity int, unitPrice float64, hsCode string) *InvoiceBuilder {
	b.data.Items = append(b.data.Items, models.InvoiceItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  float64(quantity) * unitPrice,
		HSCode:      hsCode,
	})
	return b
}

func (b *InvoiceBuilder) WithNumber(number string) *InvoiceBuilder {
	b.data.InvoiceNumber = number
	return b
}

func (b *InvoiceBuilder) WithTotalValue(total float64) *InvoiceBuilder {
	b.totalOverride = &total
	return b
}

func (b *InvoiceBuilder) Build() *models.InvoiceData {
	d := b.data
	d.Items = append([]models.InvoiceItem(nil), b.data.Items...)
	d.TotalValue = d.ItemsTotal()
	if b.totalOverride != nil {
		d.TotalValue = *b.totalOverride
	}
	return &d
}

// PackingList returns a consistent packing list with n packages of weight each.
func PackingList(n int, weight float64) *models.PackingListData {
	d := &models.PackingListData{}
	for i := 1; i <= n; i++ {
		d.Packages = append(d.Packages, models.Package{
			PackageNumber: i,
			Contents:      "Laptops HP ProBook (25 units)",
			Weight:        weight,
			Dimensions:    "80x60x50 cm",
		})
	}
	d.TotalWeight = float64(n) * weight
	return d
}

// Declaration returns a customs declaration linking the given documents.
func Declaration(links ...string) *models.DeclarationData {
	return &models.DeclarationData{
		DeclarationNumber: "118-2024-10-000999",
		CustomsOffice:     "Intendencia de Aduana Marítima del Callao",
		Regime:            "10 - Import for consumption",
		LinkedDocuments:   links,
	}
}
