package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerryscript-go/jerry/internal/layout"
	"github.com/jerryscript-go/jerry/value"
)

func TestInitBootstrapsPrimordialRealm(t *testing.T) {
	c := Init(Config{})
	require.True(t, c.APIAvailable())
	require.NotNil(t, c.CurrentRealm())
	assert.NotEqual(t, layout.NullPointer, c.CurrentRealm().Global)
}

func TestSetRealmSwapsAndReturnsPrevious(t *testing.T) {
	c := Init(Config{})
	first := c.CurrentRealm()

	global2, _, err := c.Objects.Heap.Arena.Alloc(16, 0)
	require.NoError(t, err)
	second := NewRealm(global2)

	previous := c.SetRealm(second)
	assert.Same(t, first, previous)
	assert.Same(t, second, c.CurrentRealm())

	restored := c.SetRealm(previous)
	assert.Same(t, second, restored)
	assert.Same(t, first, c.CurrentRealm())
}

func TestExceptionSlotRoundTrips(t *testing.T) {
	c := Init(Config{})
	assert.False(t, c.HasThrown())

	thrown := value.SmallInt(7)
	c.Throw(thrown)
	require.True(t, c.HasThrown())

	got := c.TakeException()
	assert.Equal(t, thrown, got)
	assert.False(t, c.HasThrown())
}

func TestNewTargetRoundTrips(t *testing.T) {
	c := Init(Config{})
	assert.Equal(t, layout.NullPointer, c.NewTarget())

	ctorRef, _, err := c.Objects.Heap.Arena.Alloc(16, 0)
	require.NoError(t, err)

	previous := c.SetNewTarget(ctorRef)
	assert.Equal(t, layout.NullPointer, previous)
	assert.Equal(t, ctorRef, c.NewTarget())

	c.SetNewTarget(previous)
	assert.Equal(t, layout.NullPointer, c.NewTarget())
}

func TestContextDataLazyInitRunsOnce(t *testing.T) {
	c := Init(Config{})
	calls := 0
	mgr := &ContextDataManager{
		Init: func() any {
			calls++
			return "payload"
		},
	}

	assert.Equal(t, "payload", c.GetContextData(mgr))
	assert.Equal(t, "payload", c.GetContextData(mgr))
	assert.Equal(t, 1, calls)
}

func TestCleanupRunsManagersInOrderAndClearsAPIAvailable(t *testing.T) {
	c := Init(Config{})

	var order []string
	mgr := &ContextDataManager{
		Init: func() any { return nil },
		Deinit: func(any) {
			order = append(order, "deinit")
		},
		Finalize: func(any) {
			order = append(order, "finalize")
		},
	}
	c.RegisterContextDataManager(mgr)

	c.Cleanup()
	require.False(t, c.APIAvailable())
	assert.Equal(t, []string{"deinit", "finalize"}, order)
}

func TestNativePointerTableReleaseFreesAtZero(t *testing.T) {
	tbl := NewNativePointerTable()
	freed := 0
	info := &NativeInfo{Free: func(any) { freed++ }}

	tbl.Set(1, info, "data")
	tbl.Acquire(1, info)
	tbl.Release(1, info)
	assert.Equal(t, 0, freed)

	tbl.Release(1, info)
	assert.Equal(t, 1, freed)

	_, ok := tbl.Get(1, info)
	assert.False(t, ok)
}

func TestNativePointerTableFreeObjectReleasesRegardlessOfRefcount(t *testing.T) {
	tbl := NewNativePointerTable()
	freed := 0
	info := &NativeInfo{Free: func(any) { freed++ }}

	tbl.Set(5, info, "data")
	tbl.Acquire(5, info)
	tbl.Acquire(5, info)

	tbl.FreeObject(5)
	assert.Equal(t, 1, freed)
	_, ok := tbl.Get(5, info)
	assert.False(t, ok)
}

func TestFeatureEnabledRespectsDisabledSet(t *testing.T) {
	c := Init(Config{DisabledFeatures: map[Feature]bool{FeatureProxy: true}})
	assert.False(t, c.FeatureEnabled(FeatureProxy))
	assert.True(t, c.FeatureEnabled(FeatureBigInt))
}
