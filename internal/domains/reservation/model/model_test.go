package model_test

import (
	"testing"

	"tourbook/internal/domains/reservation/model"
	"tourbook/shared/lookup"

	"github.com/stretchr/testify/assert"
)

func count(pred lookup.Predicate[model.Reservation]) int {
	items := model.Fixtures()

	return len(lookup.Take(items, len(items), pred))
}

func TestPredicates(t *testing.T) {
	assert.Equal(t, 2, count(model.Confirmed()))
	assert.Equal(t, 1, count(model.ByStatus(model.StatusPending)))
	assert.Equal(t, 1, count(model.ByStatus(model.StatusCancelled)))
	assert.Equal(t, 2, count(model.ByClient("CLI-001")))
	assert.Equal(t, 0, count(model.ByClient("cli-001")))
	assert.Equal(t, 2, count(model.ByExcursion("tour-chichen-itza-1700000000000")))
}
