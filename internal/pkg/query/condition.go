package query

import "fmt"

// Condition represents a WHERE clause condition.
// SQL returns the fragment and its parameters; paramIndex is the first free
// parameter number and an implementation must use len(params) consecutive
// numbers starting there.
type Condition interface {
	SQL(paramIndex int) (string, map[string]interface{})
}

type compareCondition struct {
	field string
	op    string
	value interface{}
}

func (c *compareCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, name), map[string]interface{}{name: c.value}
}

// Eq creates "field = @pN".
func Eq(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "=", value: value}
}

// Lt creates "field < @pN".
func Lt(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: "<", value: value}
}

// Gte creates "field >= @pN".
func Gte(field string, value interface{}) Condition {
	return &compareCondition{field: field, op: ">=", value: value}
}

// Before matches rows that sort strictly after the cursor (primary, tieBreak)
// under "ORDER BY primaryCol DESC, tieBreakCol DESC".
//
//	(created_at < @p0 OR (created_at = @p0 AND simulation_id < @p1))
func Before(primaryCol string, primary interface{}, tieBreakCol string, tieBreak interface{}) Condition {
	return &beforeCondition{
		primaryCol:  primaryCol,
		primary:     primary,
		tieBreakCol: tieBreakCol,
		tieBreak:    tieBreak,
	}
}

type beforeCondition struct {
	primaryCol  string
	primary     interface{}
	tieBreakCol string
	tieBreak    interface{}
}

func (c *beforeCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	p := fmt.Sprintf("p%d", paramIndex)
	t := fmt.Sprintf("p%d", paramIndex+1)
	sql := fmt.Sprintf("(%s < @%s OR (%s = @%s AND %s < @%s))",
		c.primaryCol, p, c.primaryCol, p, c.tieBreakCol, t)
	return sql, map[string]interface{}{p: c.primary, t: c.tieBreak}
}
