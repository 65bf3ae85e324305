package builder

import "errors"

var (
	// ErrUnsupportedValueType reports an operand of a Go type the literal
	// formatter has no mapping for. Values are never silently stringified.
	ErrUnsupportedValueType = errors.New("[builder] unsupported value type")

	// ErrBetweenOperands reports a BETWEEN/NOT BETWEEN expression whose
	// operand list does not hold exactly two values.
	ErrBetweenOperands = errors.New("[builder] between requires exactly two operands")

	// ErrInOperands reports an IN/NOT IN expression with an empty operand list.
	ErrInOperands = errors.New("[builder] in requires at least one operand")

	// ErrNullOperand reports a null operand used with an operator other than
	// equals or not-equals.
	ErrNullOperand = errors.New("[builder] null operand is only valid with equals or not equals")

	// ErrOperandCount reports a scalar comparison given zero or multiple operands.
	ErrOperandCount = errors.New("[builder] operator requires exactly one operand")

	// ErrNoTable reports a build attempt before any table was named.
	ErrNoTable = errors.New("[builder] no table specified")

	// ErrNoColumns reports an insert or update build with no column values set.
	ErrNoColumns = errors.New("[builder] no columns specified")

	// ErrHavingWithoutGroupBy reports a HAVING statement with an empty GROUP BY.
	ErrHavingWithoutGroupBy = errors.New("[builder] having requires group by")

	// ErrUnknownColumn reports an Alias or NoEscape reference to a column
	// that was never selected.
	ErrUnknownColumn = errors.New("[builder] unknown column")

	// ErrColumnIndex reports a column index outside the selected-column range.
	ErrColumnIndex = errors.New("[builder] column index out of range")

	// ErrUnknownTable reports a join condition referencing a table that is
	// not part of the statement.
	ErrUnknownTable = errors.New("[builder] unknown table")

	// ErrWildcardAggregate reports a wildcard column used with an aggregate
	// other than COUNT.
	ErrWildcardAggregate = errors.New("[builder] wildcard requires the count aggregate")

	// ErrAggregateColumn reports a non-COUNT aggregate without a column name.
	ErrAggregateColumn = errors.New("[builder] aggregate requires a column name")

	// ErrJoinCondition reports a join built without an ON expression or a
	// USING column list.
	ErrJoinCondition = errors.New("[builder] join requires an on expression or using columns")

	// ErrUnionOperand reports a union combined with something that is neither
	// a table name nor a select builder.
	ErrUnionOperand = errors.New("[builder] union operand must be a table name or select builder")

	// ErrUnionOrdering reports ORDER BY, LIMIT or OFFSET set on an inner arm
	// of a compound select; SQLite only allows them on the whole statement.
	ErrUnionOrdering = errors.New("[builder] order by and limit apply to the whole compound select, not its arms")
)
