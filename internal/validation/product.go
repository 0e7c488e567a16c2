package validation

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/storefront-dev/storefront/internal/models"
)

type ProductInput struct {
	ProductName string `json:"product_name" validate:"required,max=60"`
}

// Product decodes and validates a single product payload. Price accepts a
// JSON number or a numeric string and is kept as an exact decimal.
func Product(raw []byte) (models.Product, error) {
	fields, err := decodeObject(raw)

	if err != nil {
		return models.Product{}, err
	}

	var input ProductInput
	var price *decimal.Decimal
	verr := NewError()
	present := make(map[string]bool)

	for key, value := range fields {
		switch key {
		case "product_name":
			s, ok := decodeString(value)
			if !ok {
				verr.Add(key, msgInvalidString)
				continue
			}
			present[key] = !isNull(value)
			input.ProductName = s
		case "price":
			if isNull(value) {
				continue
			}
			p, ok := decodePrice(value)
			if !ok {
				verr.Add(key, msgInvalidNumber)
				continue
			}
			price = &p
		case "id":
		default:
			verr.Add(key, msgUnknown)
		}
	}

	if err := checkStruct(input, present, verr); err != nil {
		return models.Product{}, err
	}

	if !verr.Has("price") {
		price = checkPrice(price, verr)
	}

	if err := verr.orNil(); err != nil {
		return models.Product{}, err
	}

	return models.Product{
		ProductName: input.ProductName,
		Price:       *price,
	}, nil
}

func decodePrice(raw json.RawMessage) (decimal.Decimal, bool) {
	var d decimal.Decimal

	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}

// checkPrice records the first price rule that fails and otherwise returns
// the price without trailing zeros.
func checkPrice(price *decimal.Decimal, verr *Error) *decimal.Decimal {
	if price == nil {
		verr.Add("price", msgRequired)
		return nil
	}

	checked, err := models.CheckPrice(*price)

	var violation *models.ConstraintViolation

	if errors.As(err, &violation) {
		verr.Add("price", violation.Message)
		return nil
	}

	return &checked
}

// Products decodes a {"products": [...]} batch.
func Products(body []byte) ([]models.Product, error) {
	items, err := decodeEnvelope(body, "products")

	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(items))

	for _, item := range items {
		product, err := Product(item)

		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	return products, nil
}
