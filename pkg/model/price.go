package model

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Price is an exact decimal amount. Money never goes through floats:
// values are parsed from strings, multiplied as decimals and stored as
// BSON Decimal128.
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{Decimal: d}, nil
}

// PriceForNights computes pricePerNight x nights exactly.
func PriceForNights(pricePerNight Price, nights int) Price {
	return Price{Decimal: pricePerNight.Decimal.Mul(decimal.NewFromInt(int64(nights)))}
}

func (p Price) IsPositive() bool {
	return p.Decimal.IsPositive()
}

func (p Price) Equal(other Price) bool {
	return p.Decimal.Equal(other.Decimal)
}

func (p Price) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(p.Decimal.String())
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode price %s: %w", p.Decimal, err)
	}
	return bson.MarshalValue(d128)
}

func (p *Price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeDecimal128:
		var d128 primitive.Decimal128
		if err := bson.UnmarshalValue(t, data, &d128); err != nil {
			return fmt.Errorf("failed to decode price: %w", err)
		}
		d, err := decimal.NewFromString(d128.String())
		if err != nil {
			return fmt.Errorf("failed to parse stored price %q: %w", d128.String(), err)
		}
		p.Decimal = d
		return nil
	case bson.TypeString:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return fmt.Errorf("failed to decode price: %w", err)
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("failed to parse stored price %q: %w", s, err)
		}
		p.Decimal = d
		return nil
	default:
		return fmt.Errorf("unsupported BSON type for price: %v", t)
	}
}
