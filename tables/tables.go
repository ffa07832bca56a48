package tables

// These tables are in their own file because they are large.
// Addresses and code references live in addresses.go and refs.go.

// Ref ties a name-bearing ROM address to the code other records use for it.
type Ref struct {
	Address int64
	Code    string
}

// Entry is one code/label pair of a static vocabulary.
type Entry struct {
	Code  string
	Label string
}

// Static is a fixed vocabulary. Width is in hex digits.
type Static struct {
	Name    string
	Width   int
	Entries []Entry
}

// Skill names, in the order skills are stored in character and trainer records.
var Skills = []string{
	"Alchemist", "Diplomat", "Healer", "Loremaster", "Mechanic", "Merchant",
	"Ranger", "Stealth", "Thief", "Troubadour", "Warrior", "Wizard",
	"Bite", "Breath", "Claw", "Hafted", "Missile", "Pole", "Spit", "Sting",
	"Sword", "Throw", "Tusk",
}

var Attributes = []string{"Intelligence", "Willpower", "Dexterity", "Endurance", "Strength", "Stamina"}

// Item categories by the low byte of the item code.
// 10 is missing on purpose: potions are handled by Potions.
var ItemCategories = map[string]string{
	"01": "misc",
	"05": "armor",
	"06": "shield",
	"07": "weapon",
	"09": "helmet",
	"0A": "cloak",
	"0B": "glove",
	"0C": "ring",
	"0D": "wand",
	"0E": "belt",
	"0F": "boots",
	"11": "scroll",
	"12": "key",
	"13": "amulet",
}

const POTION_SUFFIX = "10"

// Potions are keyed by the byte-swapped item code ("0310" in a record is "1003" here).
var Potions = map[string]string{
	"1003": "Acid Flask",
	"1007": "Antidote Potion",
	"100E": "Charisma Potion",
	"100D": "Clarity Potion",
	"1006": "Curing Potion",
	"100F": "Defense Potion",
	"100A": "Dexterity Potion",
	"1000": "Fire Flask",
	"1004": "Healing Potion",
	"1001": "Inferno Flask",
	"1008": "Restore Potion",
	"1002": "Sleep Gas Flask",
	"1005": "Stamina Potion",
	"1010": "Stealth Potion",
	"1009": "Strength Potion",
}

// Becan is both a party member and a trainer; his party record holds the
// name shown in the shop list.
const (
	BECAN_ADDRESS    = 0x01FC7EA4
	BECAN_NAME_WIDTH = 9
	BECAN_PREFIX     = "Erromon : "
)

// Items are named with this many bytes, whatever their record's own name width.
const ITEM_NAME_WIDTH = 18

const (
	SPELL_NAME_WIDTH = 22
	LOOT_NAME_WIDTH  = 19
)

// XP shown for an enemy is exp*XP_FACTOR, capped.
const (
	XP_FACTOR = 75
	XP_CAP    = 19125
)

// Static vocabularies. The first entry of a table that has a NONE label is
// its sentinel.
var Statics = []Static{
	{"school", 2, []Entry{
		{"04", "NONE"},
		{"00", "Chaos"},
		{"01", "Elemental"},
		{"02", "Naming"},
		{"03", "Necromancy"},
		{"05", "Star"},
	}},
	{"equipment_stat", 2, []Entry{
		{"FF", "NONE"},
		{"00", "Intelligence"},
		{"01", "Willpower"},
		{"02", "Dexterity"},
		{"03", "Endurance"},
		{"04", "Strength"},
		{"05", "Spell Battery"},
	}},
	{"skill_attribute", 2, skillAttributes()},
	{"resist", 2, []Entry{
		{"00", "NONE"},
		{"0A", "Air"},
		{"0D", "Chaos"},
		{"0E", "Cutting"},
		{"01", "Earth"},
		{"0C", "Elemental"},
		{"05", "Fire"},
		{"10", "Holy"},
		{"06", "Lunar"},
		{"09", "Magic"},
		{"07", "Naming"},
		{"04", "Necromancy"},
		{"03", "Physical"},
		{"0F", "Smashing"},
		{"02", "Solar"},
		{"0B", "Star"},
		{"08", "Water"},
	}},
	// No NONE here, so 00 ("100") is the sentinel.
	// FF really does decode as -6275; nobody knows why.
	{"resist_amount", 2, []Entry{
		{"00", "100"},
		{"01", "75"},
		{"02", "50"},
		{"03", "25"},
		{"04", "0"},
		{"05", "-25"},
		{"06", "-50"},
		{"07", "-75"},
		{"08", "-100"},
		{"FF", "-6275"},
	}},
	{"weapon_animation", 2, []Entry{
		{"00", "Bite"},
		{"01", "Other"},
		{"02", "Stabbing"},
		{"03", "Slashing"},
		{"04", "Thrown"},
		{"05", "Missile"},
	}},
	{"weapon_type", 1, []Entry{
		{"0", "Bite"},
		{"1", "Breath"},
		{"2", "Claw"},
		{"3", "Hafted"},
		{"4", "Missile"},
		{"5", "Pole"},
		{"6", "Spit"},
		{"7", "Sting"},
		{"8", "Sword"},
		{"9", "Thrown"},
		{"A", "Tusk"},
	}},
	{"target_num", 1, []Entry{
		{"3", "Increases by rank"},
		{"2", "Unlimited"},
		{"1", "One"},
		{"0", "Self"},
	}},
	{"target_type", 1, []Entry{
		{"4", "Everyone"},
		{"3", "Anyone in target area"},
		{"2", "Enemy only in target area"},
		{"1", "Party only in target area"},
		{"0", "Outside of combat (Useless)"},
	}},
	{"ingredient", 1, []Entry{
		{"0", "NONE"},
		{"2", "Herb"},
		{"3", "Gemstone"},
		{"1", "Spice"},
	}},
	{"aspect", 1, []Entry{
		{"0", "NONE"},
		{"2", "Solar"},
		{"1", "Lunar"},
	}},
	{"spell_aspect", 1, []Entry{
		{"0", "NONE"},
		{"4", "Solar"},
		{"3", "Lunar"},
	}},
	{"character_aspect", 2, []Entry{
		{"00", "NONE"},
		{"02", "Solar"},
		{"01", "Lunar"},
	}},
}

func skillAttributes() []Entry {
	out := []Entry{{"FF", "NONE"}}
	for i, s := range Skills {
		// Throw is spelled Thrown when it's a bonus, Tusk stays Tusk
		if s == "Throw" {
			s = "Thrown"
		}
		out = append(out, Entry{hexByte(i), s})
	}
	for i, a := range Attributes {
		out = append(out, Entry{hexByte(0x20 + i), a})
	}
	return out
}

func hexByte(n int) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[n>>4], digits[n&0xF]})
}
