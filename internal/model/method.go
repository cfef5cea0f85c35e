package model

import (
	"strconv"
	"time"
)

// StrategyLabelPrefix prefixes every stored strategy label; the numeric
// suffix is the upstream calculation-method id.
const StrategyLabelPrefix = "athan-api-"

// StrategyLabel builds the stored label for an upstream method id.
func StrategyLabel(methodID int) string {
	return StrategyLabelPrefix + strconv.Itoa(methodID)
}

// CalculationMethod is one entry of the calculation-method catalog,
// mirroring the upstream listing of astronomical conventions.
type CalculationMethod struct {
	ID        int       `db:"id"         json:"id"`
	MethodID  int       `db:"method_id"  json:"method_id"`
	Label     string    `db:"label"      json:"label"`
	Name      string    `db:"name"       json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
