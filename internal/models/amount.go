package models

import (
	"context"
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/schema"
)

func init() {
	schema.RegisterSerializer("cents", CentsSerializer{})
}

// CentsSerializer stores a decimal amount as an integer number of cents.
//
// SQLite has no exact decimal type and keeps DECIMAL columns as 8 byte
// floats, which cannot represent every amount of 16 integer digits.
type CentsSerializer struct{}

// Scan implements the gorm serializer interface.
func (CentsSerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue any) error {
	var cents decimal.Decimal

	switch v := dbValue.(type) {
	case nil:
		cents = decimal.Zero
	case int64:
		cents = decimal.NewFromInt(v)
	case int32:
		cents = decimal.NewFromInt32(v)
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return fmt.Errorf("scanning amount %q: %w", v, err)
		}
		cents = d
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("scanning amount %q: %w", v, err)
		}
		cents = d
	default:
		return fmt.Errorf("scanning amount: unsupported type %T", dbValue)
	}

	field.ReflectValueOf(ctx, dst).Set(reflect.ValueOf(cents.Shift(-2)))
	return nil
}

// Value implements the gorm serializer interface.
func (CentsSerializer) Value(_ context.Context, _ *schema.Field, _ reflect.Value, fieldValue any) (any, error) {
	var amount decimal.Decimal

	switch v := fieldValue.(type) {
	case decimal.Decimal:
		amount = v
	case *decimal.Decimal:
		if v == nil {
			return nil, nil
		}
		amount = *v
	default:
		return nil, fmt.Errorf("storing amount: unsupported type %T", fieldValue)
	}

	cents := amount.Shift(2)
	if !cents.IsInteger() || !cents.BigInt().IsInt64() {
		return nil, fmt.Errorf("%w, got %s", ErrAmountPrecision, amount)
	}

	return cents.IntPart(), nil
}
