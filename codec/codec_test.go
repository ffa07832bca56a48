package codec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidynedit/lookup"
	"aidynedit/tables"
	"aidynedit/types"
)

// test_tables serves the static tables plus small stand-ins for the ROM-derived ones.
type test_tables map[string]*lookup.Table

func (tt test_tables) Table(name string) (*lookup.Table, error) {
	t, ok := tt[name]
	if !ok {
		return nil, fmt.Errorf("no table %v", name)
	}
	return t, nil
}

func new_test_tables(t *testing.T) test_tables {
	t.Helper()
	tt := test_tables{}
	for _, s := range tables.Statics {
		tab, err := lookup.Static(s)
		require.NoError(t, err)
		tt[s.Name] = tab
	}

	names := map[int64]string{0x10: "Broadsword", 0x20: "Leather", 0x30: "Buckler", 0x40: "Fireball", 0x50: "Wind", 0x60: "Goblin Loot"}
	read := func(addr int64, width int) (string, error) { return names[addr], nil }

	items, err := lookup.Items([]tables.Ref{{Address: 0x10, Code: "0207"}, {Address: 0x20, Code: "0105"}, {Address: 0x30, Code: "0306"}, {Address: 0x01, Code: "0310"}}, read)
	require.NoError(t, err)
	tt["items"] = items
	for _, c := range []string{"weapon", "armor", "shield"} {
		v, err := lookup.View(items, c)
		require.NoError(t, err)
		tt[v.Name] = v
	}
	spells, err := lookup.Names("spells", 4, []tables.Ref{{Address: 0x40, Code: "0103"}, {Address: 0x50, Code: "0203"}}, 22, read)
	require.NoError(t, err)
	tt["spells"] = spells
	loot, err := lookup.Names("loot", 2, []tables.Ref{{Address: 0x60, Code: "3F"}}, 19, read)
	require.NoError(t, err)
	tt["loot"] = loot
	return tt
}

var scenario = &types.RecordKind{
	Name:       "scenario",
	DataLength: 6,
	Fields: []types.FieldSpec{
		{Name: "first", Offset: 0, Width: 1, Kind: types.FK_UNSIGNED, Max: 255},
		{Name: "bonus", Offset: 3, Width: 1, Kind: types.FK_SIGNED, Max: 127},
	},
}

func TestConcreteScenario(t *testing.T) {
	block := []byte{0x02, 0x00, 0x00, 0x7F, 0x01, 0x00}
	values, err := Decode(scenario, block, test_tables{})
	require.NoError(t, err)
	assert.Equal(t, types.Int(2), values["first"])
	assert.Equal(t, types.Int(127), values["bonus"])

	values["bonus"] = types.Int(-1)
	out, err := Encode(scenario, block, values, test_tables{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x00, 0x00, 0xFF, 0x01, 0x00}, out)
	// the input block is not modified
	assert.Equal(t, byte(0x7F), block[3])
}

func TestSignedByteSymmetry(t *testing.T) {
	f := &scenario.Fields[1]
	block := make([]byte, 6)
	for v := -128; v <= 127; v++ {
		require.NoError(t, Encode_field(f, types.Int(v), block, 0, nil))
		got, err := Decode_field(f, block, nil)
		require.NoError(t, err)
		require.Equal(t, v, got.Int)
	}

	require.NoError(t, Encode_field(f, types.Int(-1), block, 0, nil))
	assert.Equal(t, byte(255), block[3])

	block[3] = 129
	got, err := Decode_field(f, block, nil)
	require.NoError(t, err)
	assert.Equal(t, -127, got.Int)

	assert.True(t, errors.Is(Encode_field(f, types.Int(128), block, 0, nil), ErrValue))
	assert.True(t, errors.Is(Encode_field(f, types.Int(-129), block, 0, nil), ErrValue))
}

func TestLittleEndianBaseValue(t *testing.T) {
	f := &types.FieldSpec{Name: "value", Offset: 1, Width: 2, Kind: types.FK_WORD, Max: 65535}
	block := make([]byte, 4)
	for v := 0; v <= 65535; v++ {
		require.NoError(t, Encode_field(f, types.Int(v), block, 0, nil))
		require.Equal(t, byte(v%256), block[1])
		require.Equal(t, byte(v/256), block[2])
		got, err := Decode_field(f, block, nil)
		require.NoError(t, err)
		require.Equal(t, v, got.Int)
	}

	for _, v := range []int{65536, 70000, 1 << 20} {
		require.NoError(t, Encode_field(f, types.Int(v), block, 0, nil))
		assert.Equal(t, []byte{0xFF, 0xFF}, block[1:3], "%v", v)
		got, err := Decode_field(f, block, nil)
		require.NoError(t, err)
		assert.Equal(t, 65535, got.Int)
	}
	assert.Equal(t, byte(0), block[0])
	assert.Equal(t, byte(0), block[3])
}

func TestSentinelPartyEnemyDivergence(t *testing.T) {
	for _, kind := range []*types.RecordKind{tables.Party, tables.Enemy} {
		f, ok := kind.Field("Alchemist")
		require.True(t, ok)
		block := make([]byte, kind.DataLength)

		block[f.Offset] = 255
		v, err := Decode_field(f, block, nil)
		require.NoError(t, err)
		assert.True(t, v.Unset, kind.Name)
		assert.Equal(t, "", v.String())

		block[f.Offset] = 7
		out, err := Encode(kind, block, map[string]types.Value{"Alchemist": types.Unset(), "shield_skill": types.Unset()}, nil)
		require.NoError(t, err)
		shield, _ := kind.Field("shield_skill")
		switch kind.Name {
		case "party":
			assert.Equal(t, byte(255), out[f.Offset])
			assert.Equal(t, byte(255), out[shield.Offset])
		case "enemy":
			assert.Equal(t, byte(0), out[f.Offset])
			assert.Equal(t, byte(0), out[shield.Offset])
		}
	}
}

func TestUnsetSkillKeepsItsByte(t *testing.T) {
	for _, kind := range []*types.RecordKind{tables.Enemy, tables.TrainerSkills} {
		f, _ := kind.Field("Wizard")
		block := make([]byte, kind.DataLength)
		block[f.Offset] = 255

		values, err := Decode(kind, block, new_test_tables(t))
		require.NoError(t, err)
		require.True(t, values["Wizard"].Unset)

		out, err := Encode(kind, block, map[string]types.Value{"Wizard": values["Wizard"]}, nil)
		require.NoError(t, err)
		assert.Equal(t, byte(255), out[f.Offset], "%v: already unset, so left alone", kind.Name)

		block[f.Offset] = 6
		out, err = Encode(kind, block, map[string]types.Value{"Wizard": types.Unset()}, nil)
		require.NoError(t, err)
		assert.Equal(t, byte(0), out[f.Offset], "%v: cleared, so blanked", kind.Name)
	}
}

func TestEmptyLabelIsALabel(t *testing.T) {
	tabs := new_test_tables(t)
	f := &types.FieldSpec{Name: "spell", Offset: 0, Width: 2, Kind: types.FK_CODE, Table: "spells"}
	block := make([]byte, 2)

	// a label is a label even when empty; it just matches nothing
	err := Encode_field(f, types.Label(""), block, 0, tabs)
	assert.True(t, errors.Is(err, lookup.ErrUnknownLabel), "got %v", err)
	assert.False(t, errors.Is(Encode_field(f, types.Label(lookup.NONE), block, 0, tabs), ErrValue))
	assert.True(t, types.Label("").IsLabel())
	assert.False(t, types.Int(0).IsLabel())
}

func TestShopSentinels(t *testing.T) {
	block := make([]byte, tables.TrainerSkills.DataLength)
	for _, c := range []struct {
		kind *types.RecordKind
		want byte
	}{{tables.TrainerSkills, 0}, {tables.BecanSkills, 255}, {tables.ShopShield, 255}} {
		f := &c.kind.Fields[0]
		out, err := Encode(c.kind, block[:c.kind.DataLength], map[string]types.Value{f.Name: types.Unset()}, nil)
		require.NoError(t, err)
		assert.Equal(t, c.want, out[0], c.kind.Name)
	}
}

// owned_block makes a block where every reserved byte is junk and every owned byte is 0.
// Zero decodes in every table, and nibble fields get junk in their high nibble.
func owned_block(kind *types.RecordKind) []byte {
	block := make([]byte, kind.DataLength)
	for i := range block {
		block[i] = byte(0xA5 + 7*i)
	}
	for _, f := range kind.Fields {
		for i := f.Offset; i < f.End(); i++ {
			block[i] = 0
		}
		if f.Kind == types.FK_NIBBLE {
			block[f.Offset] = 0xB0
		}
	}
	return block
}

func all_kinds() []*types.RecordKind {
	return append(append([]*types.RecordKind{}, tables.Kinds...), tables.Regions...)
}

func TestRoundTripPreservesReservedBytes(t *testing.T) {
	tabs := new_test_tables(t)
	for _, kind := range all_kinds() {
		block := owned_block(kind)
		values, err := Decode(kind, block, tabs)
		require.NoError(t, err, kind.Name)
		require.Len(t, values, len(kind.Fields))

		out, err := Encode(kind, block, values, tabs)
		require.NoError(t, err, kind.Name)
		assert.Equal(t, block, out, "%v: unchanged values must give unchanged bytes", kind.Name)
	}
}

// edit picks a legal value different from the decoded one.
func edit(t *testing.T, f *types.FieldSpec, v types.Value, tabs Tables) types.Value {
	switch f.Kind {
	case types.FK_SIGNED:
		return types.Int(-5)
	case types.FK_WORD:
		return types.Int(513)
	case types.FK_UNSIGNED, types.FK_SENTINEL:
		return types.Int(min(f.Max, 9))
	}
	tab, err := tabs.Table(f.Table)
	require.NoError(t, err)
	for _, l := range tab.Labels() {
		if l != v.Label {
			return types.Label(l)
		}
	}
	t.Fatalf("%v: table %v has only one label", f.Name, f.Table)
	return v
}

func TestRoundTripEditedFields(t *testing.T) {
	tabs := new_test_tables(t)
	for _, kind := range all_kinds() {
		block := owned_block(kind)
		values, err := Decode(kind, block, tabs)
		require.NoError(t, err)

		for i := range kind.Fields {
			f := &kind.Fields[i]
			edited := map[string]types.Value{f.Name: edit(t, f, values[f.Name], tabs)}
			out, err := Encode(kind, block, edited, tabs)
			require.NoError(t, err, "%v.%v", kind.Name, f.Name)

			again, err := Decode(kind, out, tabs)
			require.NoError(t, err)
			assert.Equal(t, edited[f.Name], again[f.Name], "%v.%v", kind.Name, f.Name)

			for j := range out {
				if j >= f.Offset && j < f.End() {
					continue
				}
				require.Equal(t, block[j], out[j], "%v.%v: byte %v changed", kind.Name, f.Name, j)
			}
			if f.Kind == types.FK_NIBBLE {
				assert.Equal(t, byte(0xB0), out[f.Offset]&0xF0, "%v.%v: high nibble lost", kind.Name, f.Name)
			}
		}
	}
}

func TestLootAliasDecodesAsNone(t *testing.T) {
	tabs := new_test_tables(t)
	block := owned_block(tables.Loot)
	f, _ := tables.Loot.Field("item1")
	block[f.Offset], block[f.Offset+1] = 0x0B, 0x10

	v, err := Decode_field(f, block, tabs)
	require.NoError(t, err)
	assert.Equal(t, lookup.NONE, v.Label)

	// item2 shares the alias; the "other" slots take item codes as they are
	other, _ := tables.Loot.Field("other3")
	assert.Empty(t, other.Aliases)
	f, _ = tables.Loot.Field("item2")
	block[f.Offset], block[f.Offset+1] = 0x0B, 0x10
	v, err = Decode_field(f, block, tabs)
	require.NoError(t, err)
	assert.Equal(t, lookup.NONE, v.Label)

	// writing NONE back leaves the alias alone; anything else replaces it
	require.NoError(t, Encode_field(f, types.Label(lookup.NONE), block, 0, tabs))
	assert.Equal(t, []byte{0x0B, 0x10}, block[f.Offset:f.End()])
	block[f.Offset], block[f.Offset+1] = 0x00, 0x00
	require.NoError(t, Encode_field(f, types.Label(lookup.NONE), block, 0, tabs))
	assert.Equal(t, []byte{0x00, 0x00}, block[f.Offset:f.End()])
}

func TestCodedFieldsUseCategoryViews(t *testing.T) {
	tabs := new_test_tables(t)
	block := owned_block(tables.Party)
	out, err := Encode(tables.Party, block, map[string]types.Value{
		"weapon2": types.Label("Broadsword"),
		"armor":   types.Label("Leather"),
		"shield":  types.Label("Buckler"),
		"spell1":  types.Label("Wind"),
	}, tabs)
	require.NoError(t, err)

	w, _ := tables.Party.Field("weapon2")
	assert.Equal(t, []byte{0x02, 0x07}, out[w.Offset:w.End()])
	a, _ := tables.Party.Field("armor")
	assert.Equal(t, []byte{0x01, 0x05}, out[a.Offset:a.End()])
	s, _ := tables.Party.Field("spell1")
	assert.Equal(t, []byte{0x02, 0x03}, out[s.Offset:s.End()])

	values, err := Decode(tables.Party, out, tabs)
	require.NoError(t, err)
	assert.Equal(t, "Broadsword", values["weapon2"].Label)
	assert.Equal(t, "Buckler", values["shield"].Label)
}

func TestDecodeErrors(t *testing.T) {
	tabs := new_test_tables(t)
	block := owned_block(tables.Spell)
	f, _ := tables.Spell.Field("school")
	block[f.Offset] = 0x77

	_, err := Decode(tables.Spell, block, tabs)
	assert.True(t, errors.Is(err, ErrDecode), "got %v", err)
	assert.True(t, errors.Is(err, lookup.ErrUnknownCode), "got %v", err)

	_, err = Decode(tables.Spell, block[:5], tabs)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestEncodeErrors(t *testing.T) {
	tabs := new_test_tables(t)
	block := owned_block(tables.Weapon)

	cases := map[string]map[string]types.Value{
		"unknown label":      {"damage_type": types.Label("Lightning")},
		"number for label":   {"animation": types.Int(3)},
		"label for number":   {"damage": types.Label("lots")},
		"out of range":       {"damage": types.Int(300)},
		"blank non-sentinel": {"hit": types.Unset()},
		"no such field":      {"charges": types.Int(1)},
	}
	for name, values := range cases {
		_, err := Encode(tables.Weapon, block, values, tabs)
		assert.True(t, errors.Is(err, ErrValue), "%v: got %v", name, err)
	}
}

func TestExperience(t *testing.T) {
	assert.Equal(t, 0, Experience(0))
	assert.Equal(t, 750, Experience(10))
	assert.Equal(t, 19125, Experience(255))
	assert.Equal(t, 19125, Experience(300))
}
