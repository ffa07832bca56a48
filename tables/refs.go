package tables

// ItemRefs lists every item name address with the two-byte code records use
// to refer to it. Potions have no name in the item name block; their
// "addresses" are placeholders and their labels come from Potions instead.
var ItemRefs = []Ref{
	{0x01FCD5D4, "170D"}, // Acid (wand)
	{0x01FCE608, "3311"}, // Acid Bolt (scroll)
	{0x00000001, "0310"}, // Acid Flask
	{0x01FCA5A0, "0707"}, // Air Fist
	{0x01FCDBB8, "1111"}, // Air Shield (scroll)
	{0x01FCCE04, "0101"}, // Amaranth
	{0x01FCEB0C, "0713"}, // Amulet of Pork
	{0x00000002, "0710"}, // Antidote Potion
	{0x01FCADBC, "3507"}, // Archmage's Staff
	{0x01FCE5DC, "3411"}, // Aura of Death (scroll)
	{0x01FCE584, "3611"}, // Banishing (scroll)
	{0x01FCD57C, "190D"}, // Banishing (wand)
	{0x01FCD918, "000D"}, // Banner of Gwernia
	{0x01FCD2E0, "020B"}, // Bardic Gloves
	{0x01FCA904, "0F07"}, // Battle Axe
	{0x01FCA3B8, "0007"}, // Bear Bite
	{0x01FCBA98, "1E05"}, // Beast Hide (armor)
	{0x01FCD06C, "2301"}, // Beast Hide (material)
	{0x01FCDA7C, "000E"}, // Belt of Life
	{0x01FCDA50, "010E"}, // Belt of Teleport
	{0x01FCE76C, "0112"}, // Black Key
	{0x01FCA934, "1007"}, // Blood Axe
	{0x01FCE714, "0312"}, // Blood Key
	{0x01FCB4C0, "3207"}, // Boar Tusk
	{0x01FCE6E8, "0412"}, // Bone Key
	{0x01FCDAD8, "010F"}, // Boots of Adamant
	{0x01FCDB30, "2A0F"}, // Boots of Speed
	{0x01FCDB88, "050F"}, // Boots of Striding
	{0x01FCAB48, "6007"}, // Bow of Accuracy
	{0x01FCAB78, "5F07"}, // Bow of Shielding
	{0x01FCABA8, "5E07"}, // Bow of Thunder
	{0x01FCE798, "0012"}, // Bowdens Key
	{0x01FCAD2C, "6407"}, // Breklor's Firestaff
	{0x01FCE558, "3711"}, // Brilliance (scroll)
	{0x01FCB158, "2507"}, // Broadsword
	{0x01FCC0FC, "1706"}, // Bronze Shield
	{0x01FCBFDC, "1106"}, // Buckler
	{0x01FCA3E8, "0107"}, // Buzzard Bite
	{0x01FCBB88, "0305"}, // Chainmail
	{0x01FCBDF8, "1005"}, // Chaos Armor
	{0x01FCAAE4, "4007"}, // Chaos Deathwing
	{0x01FCA814, "3107"}, // Chaos Flameblade
	{0x01FCA844, "5407"}, // Chaos Maul
	{0x01FCB528, "3D05"}, // Chaos Robes
	{0x01FCAAB4, "5307"}, // Chaos Scythe
	{0x01FCC1BC, "1B06"}, // Chaos Shield
	{0x01FCACFC, "4F07"}, // Chaos Staff
	{0x01FCB1B8, "2707"}, // Chaos Sword
	{0x01FCAEB4, "2E07"}, // Chaos Tail
	{0x00000003, "0E10"}, // Charisma Potion
	{0x01FCE52C, "3811"}, // Charming (scroll)
	{0x01FCE500, "3911"}, // Cheat Death (scroll)
	{0x01FCD098, "2401"}, // Chitin Plates
	{0x00000004, "0D10"}, // Clarity Potion
	{0x01FCBAF8, "0005"}, // Cloth Armor
	{0x01FCA964, "1107"}, // Club
	{0x01FCE26C, "4811"}, // Clumsiness (scroll)
	{0x01FCE4D4, "3A11"}, // Command (scroll)
	{0x01FCDBE4, "1011"}, // Control Elem (scroll)
	{0x01FCBE2C, "4306"}, // Crab Shield
	{0x01FCCA68, "1901"}, // Cradawgh's Body
	{0x01FCE450, "3D11"}, // Crushing Death (scroll)
	{0x01FCD6B0, "120D"}, // Crushing Death (wand)
	{0x01FCE4A8, "3B11"}, // Ctrl Marquis (scroll)
	{0x01FCE47C, "3C11"}, // Ctrl Zombie (scroll)
	{0x00000005, "0610"}, // Curing Potion
	{0x01FCA754, "4E07"}, // Cyclops Club
	{0x01FCB39C, "4D07"}, // Cyclops Hurlstar
	{0x01FCB188, "2607"}, // Dagger
	{0x01FCBA38, "2005"}, // Darkenbat Hide (armor)
	{0x01FCD040, "2201"}, // Darkenbat Hide (material)
	{0x01FCE424, "3E11"}, // Darkness (scroll)
	{0x01FCD708, "100D"}, // Darkness (wand)
	{0x01FCB3CC, "6307"}, // Dart of Distance
	{0x01FCDC10, "0F11"}, // Debilitation (scroll)
	{0x00000006, "0F10"}, // Defense Potion
	{0x01FCE3A0, "4111"}, // Detect Chaos (scroll)
	{0x01FCE374, "4211"}, // Detect Traps (scroll)
	{0x01FCE348, "4311"}, // Dexterity (scroll)
	{0x00000007, "0A10"}, // Dexterity Potion
	{0x01FCE31C, "4411"}, // Dispel Elem (scroll)
	{0x01FCE2F0, "4511"}, // Dispel Naming (scroll)
	{0x01FCE2C4, "4611"}, // Dispel Necro (scroll)
	{0x01FCE298, "4711"}, // Dispel Star (scroll)
	{0x01FCA4AC, "0507"}, // Dragon Breath
	{0x01FCA5D0, "0807"}, // Dragon Claws
	{0x01FCB30C, "5A07"}, // Dragon Fang
	{0x01FCDC3C, "0E11"}, // Dragon Flames (scroll)
	{0x01FCBC78, "0805"}, // Dragon Leather
	{0x01FCE7C4, "0712"}, // DragonKey
	{0x01FCBE8C, "3C06"}, // Dryad Shield
	{0x01FCE3F8, "3F11"}, // Dt Moon Phase (scroll)
	{0x01FCE3CC, "4011"}, // Dt Sun Phase (scroll)
	{0x01FCA600, "0907"}, // Earth Fist
	{0x01FCDC68, "0D11"}, // Earth Smite (scroll)
	{0x01FCAD8C, "3907"}, // Ehud's Staff
	{0x01FCA8A4, "3707"}, // Elisheva's Scythe
	{0x01FCB038, "5607"}, // Enchanted Blade
	{0x01FCBC48, "0705"}, // Enchanted Hide
	{0x01FCBD98, "0E05"}, // Enchanted Plate
	{0x01FCDDC8, "0311"}, // Endurance (scroll)
	{0x01FCDC94, "0C11"}, // Escape (scroll)
	{0x01FCD49C, "0A0C"}, // Etherial Ring
	{0x01FCE0B4, "5211"}, // Exhaustion (scroll)
	{0x01FCBA08, "2405"}, // exp 1 (armor)
	{0x01FCB858, "2D05"}, // exp 10 (armor)
	{0x01FCB828, "2E05"}, // exp 11 (armor)
	{0x01FCB7F8, "2F05"}, // exp 12 (armor)
	{0x01FCB7C8, "3005"}, // exp 13 (armor)
	{0x01FCB798, "3105"}, // exp 14 (armor)
	{0x01FCB768, "3205"}, // exp 15 (armor)
	{0x01FCB738, "3305"}, // exp 16 (armor)
	{0x01FCB708, "3405"}, // exp 17 (armor)
	{0x01FCB6D8, "3505"}, // exp 18 (armor)
	{0x01FCB6A8, "3605"}, // exp 19 (armor)
	{0x01FCB9D8, "2505"}, // exp 2 (armor)
	{0x01FCB678, "3705"}, // exp 20 (armor)
	{0x01FCB648, "3805"}, // exp 21 (armor)
	{0x01FCB618, "3905"}, // exp 22 (armor)
	{0x01FCB9A8, "2605"}, // exp 3 (armor)
	{0x01FCB978, "2705"}, // exp 4 (armor)
	{0x01FCB948, "2805"}, // exp 5 (armor)
	{0x01FCB918, "2905"}, // exp 6 (armor)
	{0x01FCB8E8, "2A05"}, // exp 7 (armor)
	{0x01FCB8B8, "2B05"}, // exp 8 (armor)
	{0x01FCB888, "2C05"}, // exp 9 (armor)
	{0x01FCCF0C, "1501"}, // exp2 (non-equipable)
	{0x01FCB5E8, "3A05"}, // exp23 (armor)
	{0x01FCB5B8, "3B05"}, // exp24 (armor)
	{0x01FCCEE0, "1601"}, // exp3 (non-equipable)
	{0x01FCCEB4, "1701"}, // exp4 (non-equipable)
	{0x01FCCE88, "1801"}, // exp5 (non-equipable)
	{0x01FCA268, "4707"}, // expansion 10 (weapon)
	{0x01FCA238, "4807"}, // expansion 11 (weapon)
	{0x01FCA208, "4907"}, // expansion 12 (weapon)
	{0x01FCA1D8, "4A07"}, // expansion 13 (weapon)
	{0x01FCA1A8, "4B07"}, // expansion 14 (weapon)
	{0x01FCA178, "4C07"}, // expansion 15 (weapon)
	{0x01FCA388, "4107"}, // expansion 4 (weapon)
	{0x01FCA358, "4207"}, // expansion 5 (weapon)
	{0x01FCA328, "4307"}, // expansion 6 (weapon)
	{0x01FCA2F8, "4407"}, // expansion 7 (weapon)
	{0x01FCA2C8, "4507"}, // expansion 8 (weapon)
	{0x01FCA298, "4607"}, // expansion 9 (weapon)
	{0x00000008, "0010"}, // Fire Flask
	{0x01FCA630, "0A07"}, // Fire Touch
	{0x01FCE634, "3211"}, // Fireball (scroll)
	{0x01FCD7E4, "0A0D"}, // Fireball (wand)
	{0x01FCB068, "5707"}, // Firedrake Fang
	{0x01FCE240, "4911"}, // Frozen Doom (scroll)
	{0x01FCD6DC, "110D"}, // Frozen Doom (wand)
	{0x01FCBBE8, "0505"}, // Full Platemail
	{0x01FCA4DC, "0607"}, // Gaze
	{0x01FCD4F8, "1C0D"}, // Gem of Aspect
	{0x01FCD524, "1B0D"}, // Gem of Sensing
	{0x01FCCFE8, "1301"}, // Gemstone
	{0x01FCA8D4, "3607"}, // Giant Axe
	{0x01FCB248, "2A07"}, // Gladius
	{0x01FCD338, "000B"}, // Gloves of Healing
	{0x01FCD7B8, "0C0D"}, // Gravity (wand)
	{0x01FCA9C4, "1307"}, // Great Axe
	{0x01FCAC08, "1807"}, // Great Bow
	{0x01FCB1E8, "2807"}, // Great Sword
	{0x01FCD9F4, "040D"}, // Harp of Igone
	{0x01FCE214, "4A11"}, // Haste (scroll)
	{0x01FCEB90, "0413"}, // Haste Amulet
	{0x01FCB45C, "2F07"}, // Hatchet
	{0x00000009, "0410"}, // Healing Potion
	{0x01FCEC14, "0113"}, // Heart of Elisheva
	{0x01FCABD8, "5507"}, // Heartseeker Bow
	{0x01FCC0CC, "1606"}, // Heater Shield
	{0x01FCBA68, "1F05"}, // Hellhound Hide (armor)
	{0x01FCD014, "2101"}, // Hellhound Hide (material)
	{0x01FCD0C8, "0409"}, // Helm of Charisma
	{0x01FCD120, "0209"}, // Helm of Defense
	{0x01FCD14C, "0109"}, // Helm of Tempests
	{0x01FCD0F4, "0309"}, // Helm of Wisdom
	{0x01FCCFBC, "1201"}, // Herb
	{0x01FCA724, "6807"}, // Hockey Stick
	{0x01FCC18C, "1A06"}, // Hoplite Shield
	{0x01FCD9C8, "030D"}, // Horn of Kynon
	{0x01FCAC38, "1907"}, // Hunter's Bow
	{0x01FCB098, "3C07"}, // Ice Stiletto
	{0x01FCBD38, "0C05"}, // Iden Scale
	{0x01FCDCC0, "0A11"}, // Immolation (scroll)
	{0x01FCD5A8, "180D"}, // Immolation (wand)
	{0x01FCBC18, "0605"}, // Improved Plate
	{0x00000010, "0110"}, // Inferno Flask
	{0x01FCB588, "4105"}, // Irondrake Plate
	{0x01FCACCC, "6607"}, // Ironwood Staff
	{0x01FCB48C, "3007"}, // Javelin
	{0x01FCA7E4, "3F07"}, // Jester's Mace
	{0x01FCD390, "030B"}, // Jundar Gauntlets
	{0x01FCBCA8, "0905"}, // Jundar Leather
	{0x01FCC12C, "1806"}, // Jundar Shield
	{0x01FCD178, "0009"}, // Kendall's Hat
	{0x01FCEAB0, "1812"}, // key1
	{0x01FCE924, "0F12"}, // key10
	{0x01FCE8F8, "0E12"}, // key11
	{0x01FCE8CC, "0D12"}, // key12
	{0x01FCE8A0, "0C12"}, // key13
	{0x01FCE874, "0B12"}, // key14
	{0x01FCE848, "0A12"}, // key15
	{0x01FCE81C, "0912"}, // key16
	{0x01FCE7F0, "0812"}, // key17
	{0x01FCEA84, "1712"}, // key2
	{0x01FCEA58, "1612"}, // key3
	{0x01FCEA2C, "1512"}, // key4
	{0x01FCEA00, "1412"}, // key5
	{0x01FCE9D4, "1312"}, // key6
	{0x01FCE9A8, "1212"}, // key7
	{0x01FCE97C, "1112"}, // key8
	{0x01FCE950, "1012"}, // key9
	{0x01FCC06C, "1406"}, // Kite Shield
	{0x01FCE1E8, "4B11"}, // Know Aspect (scroll)
	{0x01FCC03C, "1306"}, // Large Shield
	{0x01FCBB28, "0105"}, // Leather Armor
	{0x01FCDB5C, "040F"}, // Leather Boots
	{0x01FCD22C, "000A"}, // Leather Cloak
	{0x01FCCDAC, "0301"}, // Letter to Kitarak
	{0x01FCCE30, "0001"}, // Letter to Txomin
	{0x01FCE1BC, "4C11"}, // Light (scroll)
	{0x01FCD734, "0F0D"}, // Light (wand)
	{0x01FCE6BC, "0512"}, // Lighthouse Key
	{0x01FCE660, "2E11"}, // Lighthouse Scroll
	{0x01FCDCEC, "0911"}, // Lightning (scroll)
	{0x01FCD600, "160D"}, // Lightning (wand)
	{0x01FCAF78, "6707"}, // Lightreaver
	{0x01FCA874, "3B07"}, // Lizard King's Axe
	{0x01FCE690, "0612"}, // Lodin's Key
	{0x01FCB128, "3407"}, // Lodin's Sword
	{0x01FCAC68, "1A07"}, // Long Bow
	{0x01FCB218, "2907"}, // Longsword
	{0x01FCD444, "080C"}, // Lunar Ring
	{0x01FCA9F4, "1407"}, // Mace
	{0x01FCA7B4, "6107"}, // Mace of Glory
	{0x01FCD3EC, "270C"}, // Magedrake Ring
	{0x01FCCD54, "0501"}, // Map 1
	{0x01FCCBF4, "0D01"}, // Map 10
	{0x01FCCBC8, "0F01"}, // Map 11
	{0x01FCCB9C, "1401"}, // Map 12
	{0x01FCCB70, "1A01"}, // Map 13
	{0x01FCCB44, "1B01"}, // Map 14
	{0x01FCCB18, "1C01"}, // Map 15
	{0x01FCCAEC, "1D01"}, // Map 16
	{0x01FCCAC0, "1F01"}, // Map 17
	{0x01FCCA94, "2001"}, // Map 18
	{0x01FCCD28, "0601"}, // Map 2
	{0x01FCCCFC, "0701"}, // Map 4
	{0x01FCCCD0, "0801"}, // Map 5
	{0x01FCCCA4, "0901"}, // Map 6
	{0x01FCCC78, "0A01"}, // Map 7
	{0x01FCCC4C, "0B01"}, // Map 8
	{0x01FCCC20, "0C01"}, // Map 9
	{0x01FCCE5C, "1E01"}, // Map to Goblin Lair
	{0x01FCA510, "5107"}, // Marquis Touch
	{0x01FCEAE0, "0913"}, // Marquis' Amulet
	{0x01FCAA24, "1507"}, // Maul
	{0x01FCDAA8, "070E"}, // Mercenary Belt
	{0x01FCB4F0, "3307"}, // Minotaur Butt
	{0x01FCD284, "020A"}, // Mirari Cloak
	{0x01FCE190, "4D11"}, // Mirror (scroll)
	{0x01FCEB38, "0613"}, // Mirror Amulet
	{0x01FCD944, "010D"}, // Moon Gem
	{0x01FCBF4C, "2206"}, // Moon Shield
	{0x01FCAA54, "1607"}, // Morningstar
	{0x01FCD418, "310C"}, // Namers Ring
	{0x01FCD200, "280A"}, // Nightdrake Mantle
	{0x01FCE138, "4F11"}, // Opening (scroll)
	{0x01FCCDD8, "0201"}, // Oriana's Letter
	{0x01FCDE20, "0111"}, // Oriana's Scroll
	{0x01FCEBE8, "0013"}, // Pandara's Amulet
	{0x01FCBBB8, "0405"}, // Partial Platemail
	{0x01FCD78C, "0D0D"}, // Persuasion (wand)
	{0x01FCD258, "010A"}, // Phantom Cloak
	{0x01FCE10C, "5011"}, // Photosynth (scroll)
	{0x01FCADEC, "1E07"}, // Pike
	{0x01FCA540, "5C07"}, // Plague Claw
	{0x01FCD2B4, "040B"}, // Plate Gauntlets
	{0x01FCB3FC, "5D07"}, // Poison Dart
	{0x01FCAB14, "1F07"}, // Poleaxe
	{0x01FCBD68, "0D05"}, // Pome Scale
	{0x01FCAEE4, "5807"}, // Pseudodragon Sting
	{0x01FCA47C, "0407"}, // Pseudopod
	{0x01FCCD80, "0401"}, // Rabisat's Asp
	{0x01FCA418, "0207"}, // Rat Bite
	{0x01FCDA24, "020E"}, // Reflection Belt
	{0x01FCDD18, "0811"}, // Remove Poison (scroll)
	{0x00000011, "0810"}, // Restore Potion
	{0x01FCD550, "1A0D"}, // Revival (wand)
	{0x01FCD3C0, "1F0C"}, // Ring of Healing
	{0x01FCD4CC, "1D0D"}, // Rope
	{0x01FCBDC8, "0F05"}, // Royal Platemail
	{0x01FCB278, "2B07"}, // Sabre
	{0x01FCCF38, "0E01"}, // Sapphire Gem
	{0x01FCBB58, "0205"}, // Scale Armor
	{0x01FCBAC8, "1C05"}, // Scorpion scale
	{0x01FCBFAC, "1D06"}, // Scorpion Shield
	{0x01FCAF14, "2307"}, // Scorpion Sting
	{0x01FCA994, "1207"}, // Scythe
	{0x01FCDE4C, "0011"}, // Sense Aura (scroll)
	{0x01FCEC40, "0213"}, // Shamsuk Amulet
	{0x01FCB558, "3F05"}, // Sheridans Armor
	{0x01FCBEBC, "3E06"}, // Sheridans Shield
	{0x01FCB008, "5207"}, // Sheridans Sword
	{0x01FCEB64, "0513"}, // Shield Amulet
	{0x01FCE0E0, "5111"}, // Shield of Starlight (scroll)
	{0x01FCD760, "0E0D"}, // Shielding (wand)
	{0x01FCAC98, "1C07"}, // Short Bow
	{0x01FCB2A8, "2C07"}, // Short Sword
	{0x01FCE740, "0212"}, // Skull Key
	{0x00000012, "0210"}, // Sleep Gas Flask
	{0x01FCC00C, "1206"}, // Small Shield
	{0x01FCE5B0, "3511"}, // Solar Wrath (scroll)
	{0x01FCAE1C, "2007"}, // Spear
	{0x01FCA784, "6207"}, // Spellbreaker Axe
	{0x01FCCF90, "1101"}, // Spice
	{0x01FCB42C, "1B07"}, // Spikes
	{0x01FCA148, "5B07"}, // Spirit Bite
	{0x01FCC15C, "1906"}, // Spirit Shield
	{0x01FCE088, "5311"}, // Spirit Shield (scroll)
	{0x01FCD1A4, "2609"}, // Spiritdrake Helm
	{0x01FCEBBC, "0313"}, // ST Gem
	{0x01FCAE4C, "2107"}, // Staff
	{0x01FCAD5C, "3E07"}, // Staff of Lugash
	{0x01FCE05C, "5411"}, // Stamina (scroll)
	{0x00000013, "0510"}, // Stamina Potion
	{0x01FCBEEC, "4006"}, // Stardrake Aegis
	{0x01FCD658, "140D"}, // Starfire (wand)
	{0x01FCE030, "5511"}, // Stealth (scroll)
	{0x00000014, "1010"}, // Stealth Potion
	{0x01FCAFD8, "5007"}, // Stealthblade
	{0x01FCE004, "5611"}, // Stellar Grav (scroll)
	{0x01FCD970, "020D"}, // Stormbreaker
	{0x01FCD364, "290B"}, // Stormdrake Claws
	{0x01FCDD44, "0711"}, // Strength (scroll)
	{0x00000015, "0910"}, // Strength Potion
	{0x01FCE164, "4E11"}, // Stupidity (scroll)
	{0x01FCCF64, "1001"}, // Sulphur
	{0x01FCBF7C, "2106"}, // Sun Shield
	{0x01FCAFA8, "5907"}, // Sword of Might
	{0x01FCBCD8, "0A05"}, // Talewok Mail
	{0x01FCB2D8, "2D07"}, // Tanto
	{0x01FCDFD8, "5711"}, // Tap Stamina (scroll)
	{0x01FCD810, "090D"}, // Tap Stamina (wand)
	{0x01FCDFAC, "5811"}, // Teleport (scroll - Teleport)
	{0x01FCDD70, "0511"}, // Teleport (scroll - Wraith Touch)
	{0x01FCA660, "0B07"}, // Tentacle Slap
	{0x01FCBD08, "0B05"}, // Terminor Mail
	{0x01FCB33C, "1D07"}, // Throwing Iron
	{0x01FCB36C, "6507"}, // Throwing Knife
	{0x01FCD30C, "010B"}, // Tinker's Gloves
	{0x01FCC09C, "1506"}, // Tower Shield
	{0x01FCB0C8, "3A07"}, // Trahern's Sword
	{0x01FCA690, "0C07"}, // Troll Claw
	{0x01FCBF1C, "2306"}, // Turtleshell Shield
	{0x01FCA570, "3D07"}, // Unarmed
	{0x01FCAE80, "2207"}, // Venom Spit
	{0x01FCDF80, "5911"}, // vs Elemental (scroll)
	{0x01FCD83C, "080D"}, // vs Elemental (wand)
	{0x01FCDF54, "5A11"}, // vs Naming (scroll)
	{0x01FCD868, "070D"}, // vs Naming (wand)
	{0x01FCDF28, "5B11"}, // vs Necromancy (scroll)
	{0x01FCD894, "060D"}, // vs Necromancy (wand)
	{0x01FCDEFC, "5C11"}, // vs Star (scroll)
	{0x01FCD8C0, "050D"}, // vs Star (wand)
	{0x01FCDED0, "5D11"}, // Wall of Bones (scroll)
	{0x01FCD8EC, "7C0D"}, // Wall of Bones (wand)
	{0x01FCAA84, "1707"}, // War Hammer
	{0x01FCB0F8, "3807"}, // Warfang
	{0x01FCDD9C, "0411"}, // Weakness (scroll)
	{0x01FCDEA4, "5E11"}, // Web of Starlight (scroll)
	{0x01FCD684, "130D"}, // Web of Starlight (wand)
	{0x01FCDE78, "5F11"}, // Whitefire (scroll)
	{0x01FCBE5C, "4206"}, // Wight Shield
	{0x01FCDDF4, "0211"}, // Wind (scroll)
	{0x01FCD470, "090C"}, // Witch Ring
	{0x01FCD1D0, "0609"}, // Wizard Hat
	{0x01FCD99C, "0B0D"}, // Wizard's Wand
	{0x01FCA448, "0307"}, // Wolf Bite
	{0x01FCDB04, "000F"}, // Woodsman's Boots
	{0x01FCA6C0, "0D07"}, // Wraith Touch
	{0x01FCD62C, "150D"}, // Wraith Touch (wand)
	{0x01FCAF44, "2407"}, // Wyvern Sting
	{0x01FCA6F0, "0E07"}, // Zombie Fist
}

// SpellRefs pairs each spell name address with its two-byte spell code.
var SpellRefs = []Ref{
	{0x01FCC564, "3B03"}, // Acid Bolt
	{0x01FCC268, "0003"}, // Air Shield
	{0x01FCC588, "3403"}, // Aura of Death
	{0x01FCC41C, "0A03"}, // Banishing
	{0x01FCC3D4, "3703"}, // Brilliance
	{0x01FCC440, "0C03"}, // Charming
	{0x01FCC540, "3F03"}, // Cheat Death
	{0x01FCC95C, "2A03"}, // Clumsiness
	{0x01FCC28C, "0103"}, // Control Elem
	{0x01FCC464, "0D03"}, // Control Marquis
	{0x01FCC5D0, "1403"}, // Control Zombies
	{0x01FCC5F4, "1503"}, // Crushing Death
	{0x01FCC618, "1603"}, // Darkness
	{0x01FCC2B0, "0203"}, // Debilitation
	{0x01FCC8F0, "2703"}, // Detect Moon Phase
	{0x01FCC914, "2803"}, // Detect Sun Phase
	{0x01FCC488, "0F03"}, // Detecting Traps
	{0x01FCC938, "2903"}, // Dexterity
	{0x01FCC7F0, "2103"}, // Dispel Elemental
	{0x01FCC814, "2203"}, // Dispel Naming
	{0x01FCC838, "2303"}, // Dispel Necro
	{0x01FCC85C, "2403"}, // Dispel Star
	{0x01FCC2D4, "0303"}, // Dragon Flames
	{0x01FCC2F8, "0403"}, // Earth Smite
	{0x01FCC4AC, "1003"}, // Endurance
	{0x01FCC220, "3C03"}, // Escape
	{0x01FCC660, "1803"}, // Exhaustion
	{0x01FCC31C, "0503"}, // Fireball
	{0x01FCC980, "2B03"}, // Frozen Doom
	{0x01FCC63C, "1703"}, // Haste
	{0x01FCC1FC, "3D03"}, // Immolation
	{0x01FCC9A4, "2D03"}, // Light
	{0x01FCC340, "0603"}, // Lightning
	{0x01FCC73C, "3E03"}, // Mirror
	{0x01FCC4D0, "1103"}, // Opening
	{0x01FCC884, "3903"}, // Photosynthesis
	{0x01FCC718, "3203"}, // Poison
	{0x01FCC244, "3803"}, // Remove Poison
	{0x01FCC4F4, "1203"}, // Sense Aura
	{0x01FCC8A8, "3503"}, // Solar Wrath
	{0x01FCC6F0, "1C03"}, // Spirit Shield
	{0x01FCC684, "1903"}, // Stamina
	{0x01FCC8CC, "2603"}, // Starlight Shield
	{0x01FCC9C8, "2E03"}, // Stealth
	{0x01FCC9EC, "2F03"}, // Stellar Gravity
	{0x01FCC364, "0803"}, // Strength
	{0x01FCC3F8, "3603"}, // Stupidity
	{0x01FCC6A8, "1A03"}, // Tap Stamina
	{0x01FCC3B0, "3A03"}, // Teleportation
	{0x01FCC760, "1D03"}, // vs. Elemental
	{0x01FCC784, "1E03"}, // vs. Naming
	{0x01FCC7A8, "1F03"}, // vs. Necromancy
	{0x01FCC7CC, "2003"}, // vs. Star
	{0x01FCC6CC, "1B03"}, // Wall Of Bones
	{0x01FCC518, "1303"}, // Weakness
	{0x01FCCA10, "3003"}, // Web Of Starlight
	{0x01FCCA34, "3103"}, // Whitefire
	{0x01FCC388, "0903"}, // Wind
	{0x01FCC5AC, "3303"}, // Wraith Touch
}

// LootRefs pairs each loot table (drop category) with its one-byte code.
// The address is the start of the loot record, which begins with its name.
var LootRefs = []Ref{
	{0x01FD23E4, "3F"},
	{0x01FD241C, "3E"},
	{0x01FD248C, "3C"},
	{0x01FD24C4, "3B"},
	{0x01FD24FC, "3A"},
	{0x01FD2534, "39"},
	{0x01FD256C, "38"},
	{0x01FD25A4, "37"},
	{0x01FD25DC, "36"},
	{0x01FD2614, "35"},
	{0x01FD264C, "34"},
	{0x01FD2684, "33"},
	{0x01FD26BC, "32"},
	{0x01FD26F4, "31"},
	{0x01FD272C, "30"},
	{0x01FD2764, "2F"},
	{0x01FD279C, "2E"},
	{0x01FD27D4, "2D"},
	{0x01FD280C, "2C"},
	{0x01FD2844, "2B"},
	{0x01FD287C, "2A"},
	{0x01FD28B4, "29"},
	{0x01FD28EC, "28"},
	{0x01FD2924, "27"},
	{0x01FD295C, "26"},
	{0x01FD2994, "25"},
	{0x01FD29CC, "24"},
	{0x01FD2A04, "23"},
	{0x01FD2A3C, "22"},
	{0x01FD2A74, "21"},
	{0x01FD2AAC, "20"},
	{0x01FD2AE4, "1F"},
	{0x01FD2B1C, "1E"},
	{0x01FD2B54, "1D"},
	{0x01FD2B8C, "1C"},
	{0x01FD2BC4, "1B"},
	{0x01FD2BFC, "1A"},
	{0x01FD2C34, "19"},
	{0x01FD2C6C, "18"},
	{0x01FD2CA4, "17"},
	{0x01FD2CDC, "16"},
	{0x01FD2D14, "15"},
	{0x01FD2D4C, "14"},
	{0x01FD2D84, "13"},
	{0x01FD2DBC, "12"},
	{0x01FD2DF4, "11"},
	{0x01FD2E2C, "10"},
	{0x01FD2E64, "0F"},
	{0x01FD2E9C, "0E"},
	{0x01FD2ED4, "0D"},
	{0x01FD2F0C, "0C"},
	{0x01FD2F44, "0B"},
	{0x01FD2F7C, "0A"},
	{0x01FD2FB4, "09"},
	{0x01FD2FEC, "08"},
	{0x01FD3024, "07"},
	{0x01FD305C, "06"},
	{0x01FD3094, "05"},
	{0x01FD30CC, "04"},
	{0x01FD3104, "03"},
	{0x01FD313C, "02"},
	{0x01FD3174, "01"},
}
