// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)
