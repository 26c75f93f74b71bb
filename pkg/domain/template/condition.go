package template

import (
	"fmt"
	"strings"

	"github.com/quiz2biz/quiz2biz/pkg/domain/gap"
)

// Field identifies a gap attribute a task condition may test. The set is
// closed so an invalid field name fails at template construction instead
// of silently evaluating false at runtime.
type Field string

const (
	FieldCoverage       Field = "coverage"
	FieldSeverityWeight Field = "severity_weight"
	FieldResidualRisk   Field = "residual_risk"
	FieldDimensionKey   Field = "dimension_key"
	FieldAnswerValue    Field = "answer_value"
	FieldNotes          Field = "notes"
	FieldBestPractice   Field = "best_practice"
)

// numericFields are the fields Gt/Lt may be applied to.
var numericFields = map[Field]bool{
	FieldCoverage:       true,
	FieldSeverityWeight: true,
	FieldResidualRisk:   true,
}

// IsValid returns true if the field names a known gap attribute.
func (f Field) IsValid() bool {
	switch f {
	case FieldCoverage, FieldSeverityWeight, FieldResidualRisk,
		FieldDimensionKey, FieldAnswerValue, FieldNotes, FieldBestPractice:
		return true
	default:
		return false
	}
}

// IsNumeric returns true if the field carries a numeric value.
func (f Field) IsNumeric() bool {
	return numericFields[f]
}

// Operator is a comparison applied by a task condition.
type Operator string

const (
	OpEq       Operator = "eq"
	OpNe       Operator = "ne"
	OpGt       Operator = "gt"
	OpLt       Operator = "lt"
	OpContains Operator = "contains"
)

// IsValid returns true if the operator is one of the supported comparisons.
func (o Operator) IsValid() bool {
	switch o {
	case OpEq, OpNe, OpGt, OpLt, OpContains:
		return true
	default:
		return false
	}
}

// Condition gates the inclusion of one task template. Evaluation never
// errors: a numeric operator on a string field, a contains on a numeric
// field, or a value of the wrong type all evaluate false and the task is
// silently omitted.
type Condition struct {
	Field    Field
	Operator Operator
	Value    interface{}
}

// NewCondition validates field and operator up front. Gt/Lt require a
// numeric field, Contains a string field.
func NewCondition(field Field, op Operator, value interface{}) (Condition, error) {
	if !field.IsValid() {
		return Condition{}, fmt.Errorf("unknown condition field: %s", field)
	}
	if !op.IsValid() {
		return Condition{}, fmt.Errorf("unknown condition operator: %s", op)
	}
	if (op == OpGt || op == OpLt) && !field.IsNumeric() {
		return Condition{}, fmt.Errorf("operator %s requires a numeric field, got %s", op, field)
	}
	if op == OpContains && field.IsNumeric() {
		return Condition{}, fmt.Errorf("operator contains requires a string field, got %s", field)
	}
	return Condition{Field: field, Operator: op, Value: value}, nil
}

// MustCondition creates a Condition or panics. Use only for the built-in
// catalog and tests, where field names are fixed at compile time.
func MustCondition(field Field, op Operator, value interface{}) Condition {
	c, err := NewCondition(field, op, value)
	if err != nil {
		panic(err)
	}
	return c
}

// Evaluate applies the condition to a gap. Type mismatches between the
// condition value and the field value evaluate false, never panic.
func (c Condition) Evaluate(g gap.Gap) bool {
	if c.Field.IsNumeric() {
		return c.evaluateNumeric(g)
	}
	return c.evaluateString(g)
}

func (c Condition) evaluateNumeric(g gap.Gap) bool {
	var field float64
	switch c.Field {
	case FieldCoverage:
		field = g.Coverage
	case FieldSeverityWeight:
		field = g.SeverityWeight
	case FieldResidualRisk:
		field = g.ResidualRisk
	default:
		return false
	}

	want, ok := toFloat(c.Value)
	if !ok {
		return false
	}

	switch c.Operator {
	case OpEq:
		return field == want
	case OpNe:
		return field != want
	case OpGt:
		return field > want
	case OpLt:
		return field < want
	default:
		return false
	}
}

func (c Condition) evaluateString(g gap.Gap) bool {
	var field string
	switch c.Field {
	case FieldDimensionKey:
		field = g.DimensionKey
	case FieldAnswerValue:
		field = g.AnswerValue
	case FieldNotes:
		field = g.Notes
	case FieldBestPractice:
		field = g.BestPractice
	default:
		return false
	}

	want, ok := c.Value.(string)
	if !ok {
		return false
	}

	switch c.Operator {
	case OpEq:
		return field == want
	case OpNe:
		return field != want
	case OpContains:
		return strings.Contains(field, want)
	default:
		return false
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
