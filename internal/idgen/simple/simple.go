package simple

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Generator hands out random (v4) reservation IDs.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) GetID(_ context.Context) (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate random uuid: %w", err)
	}

	return id, nil
}
