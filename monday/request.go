package monday

import "fmt"

// Op is the GraphQL operation kind.
type Op string

const (
	OpQuery    Op = "query"
	OpMutation Op = "mutation"
)

// Build composes a complete GraphQL operation string for a single top-level
// field: "query{field(args){selection}}" or the mutation equivalent. The
// argument list is omitted when args renders empty; the selection must name
// at least one field.
func Build(op Op, fieldName string, args Args, selection []Field) (string, error) {
	if err := checkOp(op, fieldName); err != nil {
		return "", err
	}

	renderedArgs, err := renderArgs(args)
	if err != nil {
		return "", fmt.Errorf("monday: build %s %s: %w", op, fieldName, err)
	}
	renderedSel, err := renderSelection(selection)
	if err != nil {
		return "", fmt.Errorf("monday: build %s %s: %w", op, fieldName, err)
	}

	return fmt.Sprintf("%s{%s%s{%s}}", op, fieldName, renderedArgs, renderedSel), nil
}

// BuildScalar composes an operation with no selection set, for mutations
// whose return type is an opaque scalar (update_board returns a JSON-encoded
// string, not a selectable object).
func BuildScalar(op Op, fieldName string, args Args) (string, error) {
	if err := checkOp(op, fieldName); err != nil {
		return "", err
	}

	renderedArgs, err := renderArgs(args)
	if err != nil {
		return "", fmt.Errorf("monday: build %s %s: %w", op, fieldName, err)
	}

	return fmt.Sprintf("%s{%s%s}", op, fieldName, renderedArgs), nil
}

func checkOp(op Op, fieldName string) error {
	if op != OpQuery && op != OpMutation {
		return fmt.Errorf("monday: unknown operation kind %q", op)
	}
	if fieldName == "" {
		return fmt.Errorf("monday: %s with empty field name", op)
	}
	return nil
}
