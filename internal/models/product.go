package models

import (
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	ProductNameMaxLen = 60
	PriceScale        = 2
	// PriceIntDigits is the integer part of decimal(10,2).
	PriceIntDigits = 8
)

type Product struct {
	ID          uint            `gorm:"primaryKey"`
	ProductName string          `gorm:"type:varchar(60);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (p *Product) CheckColumns() error {
	if p.ProductName == "" {
		return &ConstraintViolation{Field: "product_name", Message: "Must not be null."}
	}

	if utf8.RuneCountInString(p.ProductName) > ProductNameMaxLen {
		return &ConstraintViolation{Field: "product_name", Message: "Longer than maximum length 60."}
	}

	price, err := CheckPrice(p.Price)

	if err != nil {
		return err
	}

	p.Price = price

	return nil
}

// CheckPrice checks that price fits decimal(10,2) and returns it with
// trailing zeros dropped. It only inspects the digits and the exponent, so
// an extreme exponent such as 1e-2000000000 is rejected without rescaling.
func CheckPrice(price decimal.Decimal) (decimal.Decimal, error) {
	if price.Sign() < 0 {
		return decimal.Decimal{}, &ConstraintViolation{Field: "price", Message: "Must be greater than or equal to 0."}
	}

	digits, exp := significand(price)

	if exp < -PriceScale {
		return decimal.Decimal{}, &ConstraintViolation{Field: "price", Message: "Must have at most 2 decimal places."}
	}

	if int64(len(digits))+exp > PriceIntDigits {
		return decimal.Decimal{}, &ConstraintViolation{Field: "price", Message: "Must be less than 100000000."}
	}

	coefficient, _ := new(big.Int).SetString(digits, 10)

	return decimal.NewFromBigInt(coefficient, int32(exp)), nil
}

// significand returns the decimal digits of |d| without trailing zeros and
// the matching exponent, so 19.90 becomes ("199", -1) and 0 becomes ("0", 0).
func significand(d decimal.Decimal) (string, int64) {
	all := new(big.Int).Abs(d.Coefficient()).String()
	digits := strings.TrimRight(all, "0")

	if digits == "" {
		return "0", 0
	}

	return digits, int64(d.Exponent()) + int64(len(all)-len(digits))
}
