package interval

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// MarshalBSONValue encodes the interval as a BSON string in the
// canonical text form, so documents holding intervals round-trip
// through MongoDB-backed visit-history stores with both bounds intact.
func (i Interval) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(i.String())
}

// UnmarshalBSONValue decodes a BSON string in the canonical text form,
// re-running the validation [New] applies.
func (i *Interval) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t != bsontype.String {
		return fmt.Errorf("interval: cannot decode BSON %v as an interval", t)
	}
	var s string
	if err := bson.UnmarshalValue(t, data, &s); err != nil {
		return fmt.Errorf("interval: %w", err)
	}
	return i.UnmarshalText([]byte(s))
}
