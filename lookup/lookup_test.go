package lookup

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidynedit/tables"
)

// fake_names serves names from a map instead of a ROM.
func fake_names(names map[int64]string) NameReader {
	return func(addr int64, width int) (string, error) {
		n, ok := names[addr]
		if !ok {
			return "", fmt.Errorf("no name at 0x%X", addr)
		}
		if len(n) > width {
			n = n[:width]
		}
		return n, nil
	}
}

// check_bijection checks that labels and codes invert each other, sentinel included.
func check_bijection(t *testing.T, tab *Table) {
	t.Helper()
	require.NoError(t, tab.Validate())

	inv, err := Invert(tab.Forward())
	require.NoError(t, err)
	for code, label := range tab.Forward() {
		assert.Equal(t, code, inv[label], "%v: %q", tab.Name, label)
		back, err := tab.Code(label)
		require.NoError(t, err)
		assert.Equal(t, code, back)
	}
	for _, label := range tab.Labels() {
		code, err := tab.Code(label)
		require.NoError(t, err)
		again, err := tab.Label(code)
		require.NoError(t, err)
		assert.Equal(t, label, again)
	}

	sentinel, err := tab.Label(tab.Sentinel)
	require.NoError(t, err, "%v has no sentinel entry", tab.Name)
	assert.Equal(t, sentinel, tab.Labels()[0], "%v: sentinel should be listed first", tab.Name)
}

func TestStaticTablesAreBijections(t *testing.T) {
	require.NotEmpty(t, tables.Statics)
	for _, s := range tables.Statics {
		tab, err := Static(s)
		require.NoError(t, err, s.Name)
		check_bijection(t, tab)
	}
}

func TestStaticSentinels(t *testing.T) {
	want := map[string]string{
		"equipment_stat":  "FF",
		"skill_attribute": "FF",
		"school":          "04",
		"resist":          "00",
		"resist_amount":   "00",
		"weapon_type":     "0",
		"aspect":          "0",
	}
	for _, s := range tables.Statics {
		sentinel, ok := want[s.Name]
		if !ok {
			continue
		}
		tab, err := Static(s)
		require.NoError(t, err)
		assert.Equal(t, sentinel, tab.Sentinel, s.Name)
	}
}

func TestResistAmountKeepsOddEntry(t *testing.T) {
	var s tables.Static
	for _, st := range tables.Statics {
		if st.Name == "resist_amount" {
			s = st
		}
	}
	tab, err := Static(s)
	require.NoError(t, err)

	l, err := tab.Label("FF")
	require.NoError(t, err)
	assert.Equal(t, "-6275", l)
	l, err = tab.Label("00")
	require.NoError(t, err)
	assert.Equal(t, "100", l)
}

func TestSkillAttributeCodes(t *testing.T) {
	var tab *Table
	for _, s := range tables.Statics {
		if s.Name == "skill_attribute" {
			var err error
			tab, err = Static(s)
			require.NoError(t, err)
		}
	}
	require.NotNil(t, tab)
	for code, label := range map[string]string{"0A": "Warrior", "0B": "Wizard", "15": "Thrown", "16": "Tusk", "20": "Intelligence", "25": "Stamina"} {
		l, err := tab.Label(code)
		require.NoError(t, err)
		assert.Equal(t, label, l)
	}
	assert.Equal(t, 1+len(tables.Skills)+len(tables.Attributes), tab.Len())
}

func TestNamesSortedByName(t *testing.T) {
	refs := []tables.Ref{{Address: 0x10, Code: "0103"}, {Address: 0x20, Code: "0203"}, {Address: 0x30, Code: "0303"}, {Address: 0x40, Code: "0403"}}
	names := fake_names(map[int64]string{0x10: "Wind", 0x20: "Air Shield", 0x30: "Fireball", 0x40: "Air Shield"})

	tab, err := Names("spells", 4, refs, 22, names)
	// two spells with the same name can't be told apart
	require.True(t, errors.Is(err, ErrAmbiguousLabel), "got %v", err)

	names = fake_names(map[int64]string{0x10: "Wind", 0x20: "Air Shield", 0x30: "Fireball", 0x40: "Banish"})
	tab, err = Names("spells", 4, refs, 22, names)
	require.NoError(t, err)
	assert.Equal(t, []string{NONE, "Air Shield", "Banish", "Fireball", "Wind"}, tab.Labels())
	assert.Equal(t, "0000", tab.Sentinel)
	check_bijection(t, tab)
}

func TestBlankNamesGetPlaceholders(t *testing.T) {
	refs := []tables.Ref{{Address: 0x10, Code: "0103"}, {Address: 0x20, Code: "0203"}, {Address: 0x30, Code: "0303"}}
	names := fake_names(map[int64]string{0x10: "", 0x20: "Wind", 0x30: "   "})

	tab, err := Names("spells", 4, refs, 22, names)
	require.NoError(t, err)
	check_bijection(t, tab)

	l, err := tab.Label("0103")
	require.NoError(t, err)
	assert.Equal(t, Blank_name(0x10), l)
	l, err = tab.Label("0303")
	require.NoError(t, err)
	assert.Equal(t, Blank_name(0x30), l)
	assert.NotEqual(t, Blank_name(0x10), Blank_name(0x30))

	items, err := Items([]tables.Ref{{Address: 0x100, Code: "0207"}}, fake_names(map[int64]string{0x100: ""}))
	require.NoError(t, err)
	check_bijection(t, items)
	l, err = items.Label("0207")
	require.NoError(t, err)
	assert.Equal(t, "(weapon) "+Blank_name(0x100), l)
}

func TestNamesReadFailure(t *testing.T) {
	_, err := Names("loot", 2, []tables.Ref{{Address: 0x99, Code: "01"}}, 19, fake_names(nil))
	assert.Error(t, err)
}

func TestItemsLabelsAndPotionSwap(t *testing.T) {
	refs := []tables.Ref{
		{Address: 0x100, Code: "0207"}, // weapon
		{Address: 0x200, Code: "0105"}, // armor
		{Address: 0x01, Code: "0310"},  // potion: swapped to 1003, Acid Flask
		{Address: 0x300, Code: "1007"}, // weapon whose raw bytes would be Antidote if swapped
		{Address: 0x400, Code: "0120"}, // unknown category, dropped
	}
	names := fake_names(map[int64]string{0x100: "Broadsword", 0x200: "Leather", 0x300: "Dagger", 0x400: "Nope"})

	tab, err := Items(refs, names)
	require.NoError(t, err)
	check_bijection(t, tab)

	assert.Equal(t, []string{NONE, "(armor) Leather", "(potion) Acid Flask", "(weapon) Broadsword", "(weapon) Dagger"}, tab.Labels())

	l, err := tab.Label("0310")
	require.NoError(t, err)
	assert.Equal(t, "(potion) Acid Flask", l)

	l, err = tab.Label("1007")
	require.NoError(t, err)
	assert.Equal(t, "(weapon) Dagger", l, "non-potion codes must not be byte-swapped")

	_, err = tab.Label("0120")
	assert.True(t, errors.Is(err, ErrUnknownCode))
}

func TestItemNamesReadAtFixedWidth(t *testing.T) {
	var widths []int
	read := func(addr int64, width int) (string, error) {
		widths = append(widths, width)
		return "Sword", nil
	}
	_, err := Items([]tables.Ref{{Address: 0x100, Code: "0207"}}, read)
	require.NoError(t, err)
	assert.Equal(t, []int{tables.ITEM_NAME_WIDTH}, widths)
}

func TestView(t *testing.T) {
	refs := []tables.Ref{{Address: 0x100, Code: "0207"}, {Address: 0x200, Code: "0105"}, {Address: 0x300, Code: "0306"}}
	items, err := Items(refs, fake_names(map[int64]string{0x100: "Broadsword", 0x200: "Leather", 0x300: "Buckler"}))
	require.NoError(t, err)

	weapons, err := View(items, "weapon")
	require.NoError(t, err)
	assert.Equal(t, "weapon_items", weapons.Name)
	assert.Equal(t, []string{NONE, "Broadsword"}, weapons.Labels())
	check_bijection(t, weapons)

	c, err := weapons.Code("Broadsword")
	require.NoError(t, err)
	assert.Equal(t, "0207", c)

	// an armor code in a weapon slot still decodes, to its full label
	l, err := weapons.Label("0105")
	require.NoError(t, err)
	assert.Equal(t, "(armor) Leather", l)
	c, err = weapons.Code("(armor) Leather")
	require.NoError(t, err)
	assert.Equal(t, "0105", c)

	_, err = weapons.Code("Leather")
	assert.True(t, errors.Is(err, ErrUnknownLabel))
}

func TestInvertAmbiguous(t *testing.T) {
	_, err := Invert(map[string]string{"01": "Fire", "02": "Fire"})
	assert.True(t, errors.Is(err, ErrAmbiguousLabel))

	inv, err := Invert(map[string]string{"01": "Fire", "02": "Water"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Fire": "01", "Water": "02"}, inv)
}

func TestUnknownLookups(t *testing.T) {
	tab, err := Static(tables.Static{Name: "x", Width: 2, Entries: []tables.Entry{{Code: "00", Label: NONE}, {Code: "01", Label: "One"}}})
	require.NoError(t, err)

	_, err = tab.Label("7F")
	assert.True(t, errors.Is(err, ErrUnknownCode))
	_, err = tab.Code("Two")
	assert.True(t, errors.Is(err, ErrUnknownLabel))

	l, err := tab.Label("01")
	require.NoError(t, err)
	assert.Equal(t, "One", l)
}

func TestStaticWithoutZeroGetsNone(t *testing.T) {
	tab, err := Static(tables.Static{Name: "x", Width: 2, Entries: []tables.Entry{{Code: "05", Label: "Five"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{NONE, "Five"}, tab.Labels())
	check_bijection(t, tab)
}
