// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// SessionRecord is the predicate function for sessionrecord builders.
type SessionRecord func(*sql.Selector)
