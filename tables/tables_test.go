package tables

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidynedit/types"
)

func TestKindsAreValid(t *testing.T) {
	for _, k := range append(append([]*types.RecordKind{}, Kinds...), Regions...) {
		assert.NoError(t, k.Validate(), k.Name)
	}
}

func TestNoDuplicateAddresses(t *testing.T) {
	for _, k := range Kinds {
		seen := map[int64]bool{}
		for _, a := range k.Addresses {
			assert.False(t, seen[a], "%v: 0x%08X listed twice", k.Name, a)
			seen[a] = true
		}
		assert.NotEmpty(t, k.Addresses, k.Name)
	}
	assert.Len(t, Scroll.Addresses, 62)
}

func TestKindByName(t *testing.T) {
	k, ok := KindByName("weapon")
	require.True(t, ok)
	assert.Same(t, Weapon, k)
	_, ok = KindByName("shop_items")
	assert.False(t, ok, "regions are not listable kinds")
}

func TestShops(t *testing.T) {
	assert.Len(t, Shops, 53)
	assert.Equal(t, int64(BECAN_ADDRESS+44+3), Shops[0].Skills, "Becan's trainer skills are his party skills")

	labels := map[string]bool{}
	trainers := []string{}
	for _, sh := range Shops {
		assert.False(t, labels[sh.Label], "duplicate shop %q", sh.Label)
		labels[sh.Label] = true
		if sh.Items == 0 {
			trainers = append(trainers, sh.Label)
		}
		assert.NotZero(t, sh.Skills, sh.Label)
		assert.NotZero(t, sh.Shield, sh.Label)
		assert.NotZero(t, sh.Spells, sh.Label)
	}
	assert.ElementsMatch(t, []string{
		"Talewok : Dryad", "Talewok : Professor 1", "Talewok : Professor 2", "Talewok : Professor 3",
	}, trainers)
}

func TestShopSlots(t *testing.T) {
	assert.Equal(t, 0, ShopSlotOffset(0))
	assert.Equal(t, 95, ShopSlotOffset(19))
	assert.Equal(t, 100, ShopSlotOffset(20))
	assert.Equal(t, 104, ShopSlotOffset(22))
	assert.Equal(t, 106, ShopItems.DataLength)
	assert.Len(t, ShopItems.Fields, SHOP_SLOTS)
}

func TestStatics(t *testing.T) {
	for _, st := range Statics {
		codes := map[string]bool{}
		for _, e := range st.Entries {
			assert.Len(t, e.Code, st.Width, "%v: %q", st.Name, e.Code)
			assert.Equal(t, strings.ToUpper(e.Code), e.Code, st.Name)
			assert.False(t, codes[e.Code], "%v: duplicate code %q", st.Name, e.Code)
			codes[e.Code] = true
		}
	}
}

func TestRefs(t *testing.T) {
	assert.Len(t, SpellRefs, 59)
	for _, r := range SpellRefs {
		assert.True(t, strings.HasSuffix(r.Code, "03"), r.Code)
	}
	for _, r := range LootRefs {
		assert.Len(t, r.Code, 2)
	}
	potions := 0
	for _, r := range ItemRefs {
		require.Len(t, r.Code, 4)
		if strings.HasSuffix(r.Code, POTION_SUFFIX) {
			potions++
			continue
		}
		_, ok := ItemCategories[r.Code[2:]]
		assert.True(t, ok, "item %v has no category", r.Code)
	}
	assert.Equal(t, len(Potions), potions)
}
