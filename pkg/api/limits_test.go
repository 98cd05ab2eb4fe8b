package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrictLimitsAreTighterThanDefault(t *testing.T) {
	def := DefaultLimits()
	strict := StrictLimits()

	assert.Less(t, strict.MaxStringLength, def.MaxStringLength)
	assert.Less(t, strict.MaxTypedArrayLength, def.MaxTypedArrayLength)
	assert.Less(t, strict.MaxPropertiesPerObject, def.MaxPropertiesPerObject)
	assert.Less(t, strict.MaxCallStackDepth, def.MaxCallStackDepth)
	assert.Less(t, strict.MaxPrototypeChainLength, def.MaxPrototypeChainLength)
}
