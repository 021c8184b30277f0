package repository

import (
	"fmt"
	"strings"
)

// Assignment is one column update in a partial-field patch.
type Assignment struct {
	Column string
	Value  interface{}
}

// BuildPatchSQL renders a dynamic UPDATE for the given assignments plus the
// updated_at refresh. The returned args end with updatedAt and id, matching
// the placeholder numbering. Exported so service tests can exercise it
// without a database.
func BuildPatchSQL(table, id string, assigns []Assignment, updatedAt interface{}) (string, []interface{}) {
	sets := make([]string, 0, len(assigns)+1)
	args := make([]interface{}, 0, len(assigns)+2)

	for i, a := range assigns {
		sets = append(sets, fmt.Sprintf("%s = $%d", a.Column, i+1))
		args = append(args, a.Value)
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(assigns)+1))
	args = append(args, updatedAt)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(sets, ", "), len(assigns)+2)
	args = append(args, id)

	return query, args
}

// patchByID applies the assignments to one row and reports whether a row was
// actually updated.
func patchByID(table, id string, assigns []Assignment, updatedAt interface{}) (bool, error) {
	query, args := BuildPatchSQL(table, id, assigns, updatedAt)

	result, err := db.Exec(query, args...)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %v", err)
	}
	return affected > 0, nil
}

// deleteByID removes one row and reports whether it existed.
func deleteByID(table, id string) (bool, error) {
	result, err := db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %v", err)
	}
	return affected > 0, nil
}
