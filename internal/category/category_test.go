package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByIDKnown(t *testing.T) {
	d := ByID("food")
	assert.Equal(t, "Food & Drink", d.Name)
	assert.NotEmpty(t, d.Icon)
}

func TestByIDUnknownFallsBackToGeneric(t *testing.T) {
	d := ByID("does-not-exist")
	assert.Equal(t, Generic, d)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("transport"))
	assert.False(t, Valid("does-not-exist"))
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	assert.NotEmpty(t, all)

	all[0].Name = "mutated"
	assert.NotEqual(t, "mutated", All()[0].Name)
}
