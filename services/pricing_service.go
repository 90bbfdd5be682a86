package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pension-backend/config"
)

// PricingService computes itemized stay prices. All arithmetic is decimal;
// identical input always yields identical output.
type PricingService struct {
	Catalog       *CatalogService
	TaxRate       decimal.Decimal
	BreakfastRate decimal.Decimal
}

func NewPricingService(catalog *CatalogService, cfg config.PricingConfig) (*PricingService, error) {
	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("invalid tax rate %q: %w", cfg.TaxRate, err)
	}
	breakfastRate, err := decimal.NewFromString(cfg.BreakfastRate)
	if err != nil {
		return nil, fmt.Errorf("invalid breakfast rate %q: %w", cfg.BreakfastRate, err)
	}
	return &PricingService{Catalog: catalog, TaxRate: taxRate, BreakfastRate: breakfastRate}, nil
}

// PriceBreakdown carries every line item a receipt needs, not just the
// total.
type PriceBreakdown struct {
	RoomTypeID   uint   `json:"room_type_id"`
	RoomTypeName string `json:"room_type_name"`
	Nights       int    `json:"nights"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`

	NightlyRate decimal.Decimal `json:"nightly_rate"`
	RoomPrice   decimal.Decimal `json:"room_price"`

	BreakfastIncluded bool            `json:"breakfast_included"`
	BreakfastRate     decimal.Decimal `json:"breakfast_rate"`
	BreakfastPrice    decimal.Decimal `json:"breakfast_price"`

	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// Quote prices a stay of the given room type. Children are not charged for
// breakfast; tax is a flat rate on the subtotal, rounded to two decimals.
func (s *PricingService) Quote(roomTypeID uint, checkIn, checkOut time.Time, adults, children int, breakfastIncluded bool) (*PriceBreakdown, error) {
	if adults < 1 || children < 0 {
		return nil, fmt.Errorf("%w: at least one adult, children must not be negative", ErrInvalidInput)
	}

	nights := stayNights(checkIn, checkOut)
	if nights <= 0 {
		return nil, fmt.Errorf("%w: stay must cover at least one night", ErrInvalidDateRange)
	}

	rt, err := s.Catalog.GetRoomType(roomTypeID)
	if err != nil {
		return nil, err
	}

	nightsDec := decimal.NewFromInt(int64(nights))
	roomPrice := rt.BasePrice.Mul(nightsDec)

	breakfastPrice := decimal.Zero
	if breakfastIncluded {
		breakfastPrice = s.BreakfastRate.Mul(decimal.NewFromInt(int64(adults))).Mul(nightsDec)
	}

	subtotal := roomPrice.Add(breakfastPrice)
	taxAmount := subtotal.Mul(s.TaxRate).Round(2)

	return &PriceBreakdown{
		RoomTypeID:        rt.ID,
		RoomTypeName:      rt.Name,
		Nights:            nights,
		Adults:            adults,
		Children:          children,
		NightlyRate:       rt.BasePrice,
		RoomPrice:         roomPrice,
		BreakfastIncluded: breakfastIncluded,
		BreakfastRate:     s.BreakfastRate,
		BreakfastPrice:    breakfastPrice,
		Subtotal:          subtotal,
		TaxRate:           s.TaxRate,
		TaxAmount:         taxAmount,
		Total:             subtotal.Add(taxAmount),
	}, nil
}
