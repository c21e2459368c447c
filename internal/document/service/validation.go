package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"contium/internal/document/models"
	"contium/internal/document/store"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	limits "contium/pkg/platform/validation"
)

// sumTolerance absorbs float rounding when comparing declared totals with
// the sum of their parts.
const sumTolerance = 0.005

// validateData checks that data is the variant for docType and that its
// collections and totals are consistent before anything is stored.
func (s *Service) validateData(ctx context.Context, docType models.Type, data models.Data) error {
	if data == nil {
		return dErrors.New(dErrors.CodeValidation, "data is required")
	}
	if data.DocumentType() != docType {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("data does not match document type %s", docType))
	}

	var err error
	switch d := data.(type) {
	case *models.InvoiceData:
		err = validateInvoice(d)
	case *models.PackingListData:
		err = validatePackingList(d)
	case *models.DeclarationData:
		err = s.validateDeclaration(ctx, d)
	}
	if err == nil {
		return nil
	}
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "validation failed unexpectedly")
	}
	return dErrors.Wrap(err, dErrors.CodeValidation, err.Error())
}

func validateInvoice(d *models.InvoiceData) error {
	return validation.ValidateStruct(d,
		validation.Field(&d.InvoiceNumber, validation.Required, validation.Length(1, limits.MaxReferenceLength)),
		validation.Field(&d.Exporter, validation.Required),
		validation.Field(&d.Importer, validation.Required),
		validation.Field(&d.Currency, validation.Required, is.CurrencyCode),
		validation.Field(&d.Items, validation.Required, validation.Length(1, limits.MaxInvoiceItems), validation.Each(validation.By(validateInvoiceItem))),
		validation.Field(&d.TotalValue, validation.By(equalsSum(d.ItemsTotal(), "item totals"))),
	)
}

func validateInvoiceItem(value any) error {
	item, ok := value.(models.InvoiceItem)
	if !ok {
		return validation.NewError("validation_invoice_item", "must be an invoice item")
	}
	return validation.ValidateStruct(&item,
		validation.Field(&item.Description, validation.Required),
		validation.Field(&item.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&item.UnitPrice, validation.Min(0.0)),
		validation.Field(&item.HSCode, validation.Required),
		validation.Field(&item.TotalPrice, validation.By(equalsSum(float64(item.Quantity)*item.UnitPrice, "quantity times unit price"))),
	)
}

func validatePackingList(d *models.PackingListData) error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Packages,
			validation.Required,
			validation.Length(1, limits.MaxPackages),
			validation.Each(validation.By(validatePackage)),
			validation.By(contiguousPackageNumbers),
		),
		validation.Field(&d.TotalWeight, validation.By(equalsSum(d.PackagesWeight(), "package weights"))),
		validation.Field(&d.TotalVolume, validation.Min(0.0)),
	)
}

func validatePackage(value any) error {
	p, ok := value.(models.Package)
	if !ok {
		return validation.NewError("validation_package", "must be a package")
	}
	return validation.ValidateStruct(&p,
		validation.Field(&p.PackageNumber, validation.Required),
		validation.Field(&p.Contents, validation.Required),
		validation.Field(&p.Weight, validation.Min(0.0)),
	)
}

func contiguousPackageNumbers(value any) error {
	packages, _ := value.([]models.Package)
	for i, p := range packages {
		if p.PackageNumber != i+1 {
			return validation.NewError("validation_package_sequence",
				fmt.Sprintf("package numbers must run from 1 without gaps (position %d has %d)", i+1, p.PackageNumber))
		}
	}
	return nil
}

func (s *Service) validateDeclaration(ctx context.Context, d *models.DeclarationData) error {
	return validation.ValidateStructWithContext(ctx, d,
		validation.Field(&d.DeclarationNumber, validation.Required, validation.Length(1, limits.MaxReferenceLength)),
		validation.Field(&d.CustomsOffice, validation.Required),
		validation.Field(&d.Regime, validation.Required),
		validation.Field(&d.LinkedDocuments,
			validation.Required,
			validation.Length(1, limits.MaxLinkedDocuments),
			validation.Each(validation.Required),
			validation.WithContext(s.linkableDocuments),
		),
	)
}

// linkableDocuments requires every linked id to name a distinct, existing,
// validated document that is not itself a declaration.
func (s *Service) linkableDocuments(ctx context.Context, value any) error {
	links, _ := value.([]string)
	seen := make(map[string]struct{}, len(links))
	for _, raw := range links {
		if _, dup := seen[raw]; dup {
			return validation.NewError("validation_link_duplicate", "document "+raw+" is linked more than once")
		}
		seen[raw] = struct{}{}

		docID, err := id.ParseDocumentID(raw)
		if err != nil {
			return validation.NewError("validation_link_id", err.Error())
		}
		linked, err := s.store.FindByID(ctx, docID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return validation.NewError("validation_link_missing", "linked document "+raw+" does not exist")
			}
			return validation.NewInternalError(err)
		}
		if linked.Type == models.TypeCustomsDeclaration {
			return validation.NewError("validation_link_type", "linked document "+raw+" is a customs declaration")
		}
		if linked.Status != models.StatusValidated {
			return validation.NewError("validation_link_status", "linked document "+raw+" has not been validated")
		}
	}
	return nil
}

func equalsSum(sum float64, parts string) validation.RuleFunc {
	return func(value any) error {
		v, _ := value.(float64)
		if math.Abs(v-sum) > sumTolerance {
			return validation.NewError("validation_sum_mismatch", fmt.Sprintf("must equal the sum of %s (%.2f)", parts, sum))
		}
		return nil
	}
}
