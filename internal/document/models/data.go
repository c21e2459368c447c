package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	dErrors "contium/pkg/domain-errors"
)

// Data is the type-specific payload of a document. The set of
// implementations is closed: InvoiceData, PackingListData, DeclarationData.
type Data interface {
	DocumentType() Type
	clone() Data
}

// InvoiceItem is one commercial invoice line.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
	HSCode      string  `json:"hsCode"`
}

// InvoiceData is the payload of a commercial invoice.
type InvoiceData struct {
	InvoiceNumber string        `json:"invoiceNumber"`
	Exporter      string        `json:"exporter"`
	Importer      string        `json:"importer"`
	Currency      string        `json:"currency"`
	Items         []InvoiceItem `json:"items"`
	TotalValue    float64       `json:"totalValue"`
}

func (*InvoiceData) DocumentType() Type { return TypeCommercialInvoice }

func (d *InvoiceData) clone() Data {
	c := *d
	c.Items = append([]InvoiceItem(nil), d.Items...)
	return &c
}

// ItemsTotal sums the line totals.
func (d *InvoiceData) ItemsTotal() float64 {
	var sum float64
	for _, it := range d.Items {
		sum += it.TotalPrice
	}
	return sum
}

// Package is one numbered unit on a packing list.
type Package struct {
	PackageNumber int     `json:"packageNumber"`
	Contents      string  `json:"contents"`
	Weight        float64 `json:"weight"`
	Dimensions    string  `json:"dimensions"`
}

// PackingListData is the payload of a packing list.
type PackingListData struct {
	Packages    []Package `json:"packages"`
	TotalWeight float64   `json:"totalWeight"`
	TotalVolume float64   `json:"totalVolume,omitempty"`
}

func (*PackingListData) DocumentType() Type { return TypePackingList }

func (d *PackingListData) clone() Data {
	c := *d
	c.Packages = append([]Package(nil), d.Packages...)
	return &c
}

// PackagesWeight sums the package weights.
func (d *PackingListData) PackagesWeight() float64 {
	var sum float64
	for _, p := range d.Packages {
		sum += p.Weight
	}
	return sum
}

// DeclarationData is the payload of a customs declaration.
type DeclarationData struct {
	DeclarationNumber string   `json:"damNumber"`
	CustomsOffice     string   `json:"customsOffice"`
	Regime            string   `json:"regime"`
	LinkedDocuments   []string `json:"linkedDocuments"`
}

func (*DeclarationData) DocumentType() Type { return TypeCustomsDeclaration }

func (d *DeclarationData) clone() Data {
	c := *d
	c.LinkedDocuments = append([]string(nil), d.LinkedDocuments...)
	return &c
}

// DecodeData unmarshals raw into the payload variant for t. Unknown fields
// are rejected so a payload cannot smuggle another variant's fields.
func DecodeData(t Type, raw json.RawMessage) (Data, error) {
	var target Data
	switch t {
	case TypeCommercialInvoice:
		target = &InvoiceData{}
	case TypePackingList:
		target = &PackingListData{}
	case TypeCustomsDeclaration:
		target = &DeclarationData{}
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown document type: %s", t))
	}
	if len(raw) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "data is required")
	}
	if err := strictUnmarshal(raw, target); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, fmt.Sprintf("invalid %s data", t))
	}
	return target, nil
}

// UnmarshalJSON decodes the payload according to the document type carried
// alongside it.
func (d *Document) UnmarshalJSON(b []byte) error {
	type alias Document
	aux := struct {
		*alias
		Data json.RawMessage `json:"data"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if len(aux.Data) == 0 || string(aux.Data) == "null" {
		d.Data = nil
		return nil
	}
	data, err := DecodeData(d.Type, aux.Data)
	if err != nil {
		return err
	}
	d.Data = data
	return nil
}

func strictUnmarshal(raw []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
