// Package validation holds the size limits enforced at trust boundaries.
package validation

import (
	"fmt"

	dErrors "contium/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (1 MB). Large
	// packing lists fit comfortably.
	MaxBodySize = 1 << 20
)

// Slice element count limits
const (
	// MaxInvoiceItems is the maximum number of lines on one invoice.
	MaxInvoiceItems = 500

	// MaxPackages is the maximum number of packages on one packing list.
	MaxPackages = 1000

	// MaxLinkedDocuments is the maximum number of documents a declaration may cite.
	MaxLinkedDocuments = 50
)

// String element length limits
const (
	// MaxTitleLength is the maximum length of a document title.
	MaxTitleLength = 200

	// MaxChangesLength is the maximum length of a version change note.
	MaxChangesLength = 500

	// MaxReferenceLength is the maximum length of invoice and declaration numbers.
	MaxReferenceLength = 64
)

// CheckSliceCount validates that a slice does not exceed the maximum count.
func CheckSliceCount(fieldName string, count, max int) error {
	if count > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("too many %s: max %d allowed", fieldName, max))
	}
	return nil
}

// CheckStringLength validates that a string does not exceed the maximum length.
// Length is counted in runes so accented titles are not penalized.
func CheckStringLength(fieldName, value string, max int) error {
	if n := len([]rune(value)); n > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}
