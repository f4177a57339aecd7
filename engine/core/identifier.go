package core

import "github.com/google/uuid"

// Identifier tags wrapper objects in logs and callback arguments.
type Identifier uuid.UUID

var NilIdentifier = Identifier(uuid.Nil)

func NewIdentifier() Identifier {
	return Identifier(uuid.New())
}

func (id Identifier) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first eight hex digits, enough to tell objects apart in a log.
func (id Identifier) Short() string {
	return id.String()[:8]
}
