package depot

import "errors"

// Query binds an Access to one world. Construction is purely descriptive
// and always succeeds; each execution (Cursor, ForEach, Count) compiles
// the access against the registry's current state and takes fresh
// borrows.
type Query struct {
	world  *World
	access *Access
}

// Query constructs a query over this world for the given access set.
func (w *World) Query(access *Access) *Query {
	return &Query{world: w, access: access}
}

// ForEach executes the query, invoking fn once per matching entity. All
// declared borrows are acquired before the first entity is visited and
// released on every exit path: normal completion, an error from fn, or
// ErrStopIteration (which ends iteration and is not reported as an
// error).
func (q *Query) ForEach(fn func(*Cursor) error) error {
	cur, err := q.Cursor()
	if err != nil {
		return err
	}
	defer cur.Close()
	for cur.Next() {
		if err := fn(cur); err != nil {
			if errors.Is(err, ErrStopIteration) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Count executes the query and reports how many entities match.
func (q *Query) Count() (int, error) {
	count := 0
	err := q.ForEach(func(*Cursor) error {
		count++
		return nil
	})
	return count, err
}
