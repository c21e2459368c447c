package seeder

import (
	"time"

	"contium/internal/document/models"
	"contium/internal/risk"
	"contium/internal/user"
)

// Literal demo hashes. Only doc-001 is valid hex; the rest are placeholders
// carried over from the demo dataset and are never recomputed.
const (
	hashInvoice001     = "a3f8b2c1d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4a5b6c7d8e9f0a1"
	hashInvoice002v1   = "x1y2z3a4b5c6d7e8f9g0h1i2j3k4l5m6n7o8p9q0r1s2t3u4v5w6x7y8z9a0b1c2"
	hashInvoice002     = "b4g9c3d2e5f6g7h8i9j0k1l2m3n4o5p6q7r8s9t0u1v2w3x4y5z6a7b8c9d0e1f2"
	hashPackingList001 = "c5h0d4e3f6g7h8i9j0k1l2m3n4o5p6q7r8s9t0u1v2w3x4y5z6a7b8c9d0e1f2g3"
	hashDeclaration001 = "d6i1e5f4g7h8i9j0k1l2m3n4o5p6q7r8s9t0u1v2w3x4y5z6a7b8c9d0e1f2g3h4"
)

func at(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2024, month, day, hour, minute, 0, 0, time.UTC)
}

// DemoDocuments returns fresh copies of the four demo documents.
func DemoDocuments() []*models.Document {
	users := user.SeedUsers()
	exporter := (&users[0]).Actor()
	agent := (&users[2]).Actor()

	return []*models.Document{
		{
			ID:             "doc-001",
			Type:           models.TypeCommercialInvoice,
			Title:          "Commercial Invoice #FC-2024-001",
			Hash:           hashInvoice001,
			CurrentVersion: 1,
			Versions: []models.Version{
				{Version: 1, Hash: hashInvoice001, Timestamp: at(time.January, 15, 10, 30), Actor: exporter, Changes: "Initial registration"},
			},
			RegisteredBy:  exporter,
			Status:        models.StatusValidated,
			RiskIndicator: risk.LevelLow,
			Analysis: &risk.Analysis{
				RiskLevel:        risk.LevelLow,
				DeviationPercent: 5.2,
				Explanation:      "Prices within the market range. No anomalies detected.",
				AnalyzedAt:       at(time.January, 15, 10, 31),
			},
			CreatedAt: at(time.January, 15, 10, 30),
			UpdatedAt: at(time.January, 15, 10, 31),
			Data: &models.InvoiceData{
				InvoiceNumber: "FC-2024-001",
				Exporter:      "Export Perú S.A.C.",
				Importer:      "Import Chile Ltda.",
				Currency:      "USD",
				Items: []models.InvoiceItem{
					{Description: "Laptop HP ProBook 450 G8", Quantity: 50, UnitPrice: 580, TotalPrice: 29000, HSCode: "8471.30"},
				},
				TotalValue: 29000,
			},
		},
		{
			ID:             "doc-002",
			Type:           models.TypeCommercialInvoice,
			Title:          "Commercial Invoice #FC-2024-002",
			Hash:           hashInvoice002,
			CurrentVersion: 2,
			Versions: []models.Version{
				{Version: 1, Hash: hashInvoice002v1, Timestamp: at(time.January, 16, 14, 0), Actor: exporter, Changes: "Initial registration"},
				{Version: 2, Hash: hashInvoice002, Timestamp: at(time.January, 16, 15, 30), Actor: exporter, Changes: "Corrected unit quantity"},
			},
			RegisteredBy:  exporter,
			Status:        models.StatusObserved,
			RiskIndicator: risk.LevelHigh,
			Analysis: &risk.Analysis{
				RiskLevel:        risk.LevelHigh,
				DeviationPercent: -45.7,
				Explanation:      "ALERT: unit price ($120) well below the market range ($200-$1200). Possible undervaluation.",
				AnalyzedAt:       at(time.January, 16, 14, 1),
			},
			CreatedAt: at(time.January, 16, 14, 0),
			UpdatedAt: at(time.January, 16, 15, 30),
			Data: &models.InvoiceData{
				InvoiceNumber: "FC-2024-002",
				Exporter:      "Tech Solutions Ltd.",
				Importer:      "Electro Importadora S.A.",
				Currency:      "USD",
				Items: []models.InvoiceItem{
					{Description: "Smartphone Samsung Galaxy S23", Quantity: 200, UnitPrice: 120, TotalPrice: 24000, HSCode: "8517.12"},
				},
				TotalValue: 24000,
			},
		},
		{
			ID:             "doc-003",
			Type:           models.TypePackingList,
			Title:          "Packing List #PL-2024-001",
			Hash:           hashPackingList001,
			CurrentVersion: 1,
			Versions: []models.Version{
				{Version: 1, Hash: hashPackingList001, Timestamp: at(time.January, 15, 11, 0), Actor: exporter, Changes: "Initial registration"},
			},
			RegisteredBy:  exporter,
			Status:        models.StatusValidated,
			RiskIndicator: risk.LevelLow,
			CreatedAt:     at(time.January, 15, 11, 0),
			UpdatedAt:     at(time.January, 15, 11, 0),
			Data: &models.PackingListData{
				Packages: []models.Package{
					{PackageNumber: 1, Contents: "HP ProBook laptops (25 units)", Weight: 75, Dimensions: "80x60x50 cm"},
					{PackageNumber: 2, Contents: "HP ProBook laptops (25 units)", Weight: 75, Dimensions: "80x60x50 cm"},
				},
				TotalWeight: 150,
				TotalVolume: 0.48,
			},
		},
		{
			ID:             "doc-004",
			Type:           models.TypeCustomsDeclaration,
			Title:          "Declaration #118-2024-10-000123",
			Hash:           hashDeclaration001,
			CurrentVersion: 1,
			Versions: []models.Version{
				{Version: 1, Hash: hashDeclaration001, Timestamp: at(time.January, 15, 14, 0), Actor: agent, Changes: "Declaration registered with supporting documents"},
			},
			RegisteredBy:  agent,
			Status:        models.StatusRegistered,
			RiskIndicator: risk.LevelLow,
			CreatedAt:     at(time.January, 15, 14, 0),
			UpdatedAt:     at(time.January, 15, 14, 0),
			Data: &models.DeclarationData{
				DeclarationNumber: "118-2024-10-000123",
				CustomsOffice:     "Intendencia de Aduana Marítima del Callao",
				Regime:            "10 - Import for consumption",
				LinkedDocuments:   []string{"doc-001", "doc-003"},
			},
		},
	}
}
