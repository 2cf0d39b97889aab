package logger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field helpers shared by the allocation and ranking paths so entries stay greppable

func AccountID(id uuid.UUID) zap.Field {
	return zap.String("account_id", id.String())
}

func EntityType(t string) zap.Field {
	return zap.String("entity_type", t)
}

func EntityID(id uint64) zap.Field {
	return zap.Uint64("entity_id", id)
}

func Weight(w float64) zap.Field {
	return zap.Float64("weight", w)
}

func Reason(r string) zap.Field {
	return zap.String("reason", r)
}
