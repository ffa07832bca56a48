package tables

import (
	"strconv"

	"aidynedit/types"
)

// Field constructors. Offsets are relative to the data block.

func u(name string, off, max int) types.FieldSpec {
	return types.FieldSpec{Name: name, Offset: off, Width: 1, Kind: types.FK_UNSIGNED, Max: max}
}

func s(name string, off int) types.FieldSpec {
	return types.FieldSpec{Name: name, Offset: off, Width: 1, Kind: types.FK_SIGNED, Max: 127}
}

func w(name string, off int) types.FieldSpec {
	return types.FieldSpec{Name: name, Offset: off, Width: 2, Kind: types.FK_WORD, Max: 65535}
}

func code(name string, off, width int, table string) types.FieldSpec {
	return types.FieldSpec{Name: name, Offset: off, Width: width, Kind: types.FK_CODE, Table: table}
}

func nib(name string, off int, table string) types.FieldSpec {
	return types.FieldSpec{Name: name, Offset: off, Width: 1, Kind: types.FK_NIBBLE, Table: table}
}

func sent(name string, off, max int) types.FieldSpec {
	return types.FieldSpec{Name: name, Offset: off, Width: 1, Kind: types.FK_SENTINEL, Max: max}
}

func numbered(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}

// characterFields is the layout shared by party members and enemies.
func characterFields() []types.FieldSpec {
	f := []types.FieldSpec{code("aspect", 0, 1, "character_aspect")}
	for i, sk := range Skills {
		f = append(f, sent(sk, 3+i, 10))
	}
	for i, a := range Attributes {
		f = append(f, u(a, 26+i, 127))
	}
	f = append(f, u("level", 33, 40))
	for i := 0; i < 3; i++ {
		f = append(f, code(numbered("weapon", i+1), 35+2*i, 2, "weapon_items"))
	}
	for i := 0; i < 5; i++ {
		f = append(f, code(numbered("spell", i+1), 43+2*i, 2, "spells"))
	}
	f = append(f, code("school", 53, 1, "school"))
	for i := 0; i < 5; i++ {
		f = append(f, u(numbered("spell_level", i+1), 54+i, 15))
	}
	f = append(f,
		code("armor", 68, 2, "armor_items"),
		u("protection", 70, 127),
		code("shield", 71, 2, "shield_items"),
		sent("shield_skill", 73, 10),
		code("resist1", 74, 1, "resist"),
		code("resist1_amount", 75, 1, "resist_amount"),
		code("resist2", 76, 1, "resist"),
		code("resist2_amount", 77, 1, "resist_amount"),
	)
	return f
}

// bonusFields is the stat/skill/spell/magic/resist tail of equipment records.
// Offsets are for accessories; armor and weapons shift it.
func bonusFields(shift int) []types.FieldSpec {
	return []types.FieldSpec{
		code("stat", 7+shift, 1, "equipment_stat"),
		s("stat_amount", 8+shift),
		code("skill", 9+shift, 1, "skill_attribute"),
		s("skill_amount", 10+shift),
		code("spell", 11+shift, 2, "spells"),
		u("spell_level", 13+shift, 15),
		code("magic", 15+shift, 2, "spells"),
		u("magic_level", 17+shift, 15),
		code("resist", 18+shift, 1, "resist"),
		code("resist_amount", 19+shift, 1, "resist_amount"),
	}
}

var Party = &types.RecordKind{
	Name:       "party",
	Title:      "Party",
	Addresses:  PartyAddresses,
	NameLength: 9,
	DataOffset: 44,
	DataLength: 78,
	Fields:     characterFields(),
	Blank:      255,
}

var Enemy = &types.RecordKind{
	Name:       "enemy",
	Title:      "Enemy",
	Addresses:  EnemyAddresses,
	NameLength: 17,
	DataOffset: 44,
	DataLength: 92,
	Fields: append(characterFields(),
		u("exp", 90, 255),
		code("drop", 91, 1, "loot"),
	),
	Blank: 0,
}

// In the two main loot item slots, a code of 0B10 is an empty slot.
var lootAliases = map[string]string{"0B10": "0000"}

func lootFields() []types.FieldSpec {
	f := []types.FieldSpec{
		w("gold_min", 0),
		w("gold_max", 2),
		u("armor_chance", 4, 100),
		u("shield_chance", 5, 100),
		u("weapon1_chance", 6, 100),
		u("weapon2_chance", 7, 100),
		u("weapon3_chance", 8, 100),
		u("reagent_chance", 9, 100),
		u("reagent_min", 10, 99),
		u("reagent_max", 11, 99),
	}
	for i := 0; i < 2; i++ {
		base := 12 + 5*i
		item := code(numbered("item", i+1), base, 2, "items")
		item.Aliases = lootAliases
		f = append(f,
			item,
			u(numbered("item", i+1)+"_chance", base+2, 100),
			u(numbered("item", i+1)+"_min", base+3, 99),
			u(numbered("item", i+1)+"_max", base+4, 99),
		)
	}
	for i := 0; i < 4; i++ {
		base := 22 + 3*i
		f = append(f,
			code(numbered("other", i+1), base, 2, "items"),
			u(numbered("other", i+1)+"_chance", base+2, 100),
		)
	}
	return f
}

var Loot = &types.RecordKind{
	Name:       "loot",
	Title:      "Loot table",
	Addresses:  refAddresses(LootRefs),
	NameLength: LOOT_NAME_WIDTH,
	DataOffset: 22,
	DataLength: 34,
	Fields:     lootFields(),
}

var Accessory = &types.RecordKind{
	Name:       "accessory",
	Title:      "Accessory",
	Addresses:  AccessoryAddresses,
	NameLength: 20,
	DataOffset: 24,
	DataLength: 20,
	Fields: append([]types.FieldSpec{
		u("damage", 0, 255),
		u("protection", 1, 255),
		u("str_req", 2, 30),
		u("int_req", 3, 30),
		w("value", 4),
		nib("aspect", 6, "aspect"),
	}, bonusFields(0)...),
}

func armorFields() []types.FieldSpec {
	return append([]types.FieldSpec{
		u("defense", 0, 255),
		u("protection", 1, 255),
		s("dexterity", 2),
		s("stealth", 4),
		w("value", 5),
		nib("aspect", 8, "aspect"),
	}, bonusFields(2)...)
}

// Armor and shields read 25 bytes but only own the first 22.
var Armor = &types.RecordKind{
	Name:       "armor",
	Title:      "Armor",
	Addresses:  ArmorAddresses,
	NameLength: 22,
	DataOffset: 26,
	DataLength: 25,
	Fields:     armorFields(),
}

var Shield = &types.RecordKind{
	Name:       "shield",
	Title:      "Shield",
	Addresses:  ShieldAddresses,
	NameLength: 22,
	DataOffset: 26,
	DataLength: 25,
	Fields:     armorFields(),
}

var Weapon = &types.RecordKind{
	Name:       "weapon",
	Title:      "Weapon",
	Addresses:  WeaponAddresses,
	NameLength: 21,
	DataOffset: 23,
	DataLength: 25,
	Fields: append([]types.FieldSpec{
		nib("type", 0, "weapon_type"),
		u("str_req", 1, 255),
		u("hit", 2, 255),
		u("damage", 3, 255),
		w("value", 4),
		u("range", 7, 255),
		code("animation", 8, 1, "weapon_animation"),
		code("damage_type", 10, 1, "resist"),
		nib("aspect", 11, "aspect"),
	}, bonusFields(5)...),
}

var Wand = &types.RecordKind{
	Name:       "wand",
	Title:      "Wand",
	Addresses:  WandAddresses,
	NameLength: 18,
	DataOffset: 24,
	DataLength: 20,
	Fields: []types.FieldSpec{
		u("damage", 0, 255),
		u("protection", 1, 255),
		u("str_req", 2, 30),
		u("int_req", 3, 30),
		w("value", 4),
		nib("aspect", 6, "aspect"),
		code("skill", 7, 1, "skill_attribute"),
		s("skill_amount", 8),
		code("spell", 11, 2, "spells"),
		u("charges", 13, 255),
		u("spell_level", 14, 15),
		code("resist", 18, 1, "resist"),
		code("resist_amount", 19, 1, "resist_amount"),
	},
}

var Scroll = &types.RecordKind{
	Name:       "scroll",
	Title:      "Scroll",
	Addresses:  ScrollAddresses,
	NameLength: 18,
	DataOffset: 24,
	DataLength: 20,
	Fields: []types.FieldSpec{
		w("value", 4),
		code("spell", 11, 2, "spells"),
		u("cast_level", 14, 15),
	},
}

var Spell = &types.RecordKind{
	Name:       "spell",
	Title:      "Spell",
	Addresses:  SpellAddresses,
	NameLength: SPELL_NAME_WIDTH,
	DataOffset: 25,
	DataLength: 11,
	Fields: []types.FieldSpec{
		code("school", 0, 1, "school"),
		u("damage", 1, 255),
		u("stamina", 2, 120),
		nib("target_num", 3, "target_num"),
		nib("target_type", 4, "target_type"),
		u("wizard_level", 6, 10),
		nib("aspect", 7, "spell_aspect"),
		u("range", 8, 255),
		nib("ingredient", 9, "ingredient"),
		u("exp", 10, 255),
	},
}

// Kinds lists every named record kind, in menu order.
var Kinds = []*types.RecordKind{Party, Enemy, Loot, Accessory, Armor, Shield, Weapon, Wand, Scroll, Spell}

func KindByName(name string) (*types.RecordKind, bool) {
	for _, k := range Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return nil, false
}

// Shop regions. These have no name and no address list of their own; the
// addresses come from Shops.

func skillRegion(name string, blank byte) *types.RecordKind {
	f := []types.FieldSpec{}
	for i, sk := range Skills {
		f = append(f, sent(sk, i, 10))
	}
	return &types.RecordKind{Name: name, Title: "Skills taught", DataLength: len(Skills), Fields: f, Blank: blank}
}

var (
	TrainerSkills = skillRegion("trainer_skills", 0)
	BecanSkills   = skillRegion("becan_skills", 255)
)

// Every shop, Becan or not, writes a blank shield skill as 255.
var ShopShield = &types.RecordKind{
	Name:       "shop_shield",
	Title:      "Shield skill taught",
	DataLength: 1,
	Fields:     []types.FieldSpec{sent("shield_skill", 0, 10)},
	Blank:      255,
}

// Byte 10 sits between the spell codes and the levels and is never touched.
var ShopSpells = &types.RecordKind{
	Name:       "shop_spells",
	Title:      "Spells taught",
	DataLength: 16,
	Fields: func() []types.FieldSpec {
		f := []types.FieldSpec{}
		for i := 0; i < 5; i++ {
			f = append(f, code(numbered("spell", i+1), 2*i, 2, "spells"))
		}
		for i := 0; i < 5; i++ {
			f = append(f, u(numbered("spell_level", i+1), 11+i, 15))
		}
		return f
	}(),
}

const (
	SHOP_SLOTS        = 23
	SHOP_WIDE_SLOTS   = 20
	SHOP_WIDE_STRIDE  = 5
	SHOP_NARROW_SLOTS = SHOP_SLOTS - SHOP_WIDE_SLOTS
)

// ShopSlotOffset is where slot i starts within the inventory block.
// The first 20 slots carry 3 bytes of per-slot data after the code.
func ShopSlotOffset(i int) int {
	if i < SHOP_WIDE_SLOTS {
		return i * SHOP_WIDE_STRIDE
	}
	return SHOP_WIDE_SLOTS*SHOP_WIDE_STRIDE + (i-SHOP_WIDE_SLOTS)*2
}

var ShopItems = &types.RecordKind{
	Name:       "shop_items",
	Title:      "Inventory",
	DataLength: ShopSlotOffset(SHOP_SLOTS),
	Fields: func() []types.FieldSpec {
		f := []types.FieldSpec{}
		for i := 0; i < SHOP_SLOTS; i++ {
			f = append(f, code(numbered("slot", i+1), ShopSlotOffset(i), 2, "items"))
		}
		return f
	}(),
}

// Regions lists every shop region kind.
var Regions = []*types.RecordKind{TrainerSkills, BecanSkills, ShopShield, ShopSpells, ShopItems}

func refAddresses(refs []Ref) []int64 {
	out := make([]int64, len(refs))
	for i, r := range refs {
		out[i] = r.Address
	}
	return out
}
