package tables

// Record start addresses. Each list holds every instance of one record kind;
// the order here is irrelevant because lists are re-sorted by name on every
// enumeration.

var PartyAddresses = []int64{
	0x01FC7C84, // Abrecan
	0x01FC7D0C, // Alaron
	0x01FC7D94, // Arturo
	0x01FC7E1C, // Baird
	0x01FC7EA4, // Becan
	0x01FC7F2C, // Brenna
	0x01FC7FB4, // Donovan
	0x01FC803C, // Dougal
	0x01FC7BFC, // Farris
	0x01FC80C4, // Godric
	0x01FC814C, // Keelin
	0x01FC81D4, // Niesen
	0x01FC825C, // Rheda
	0x01FC82E4, // Sholeh
}

var EnemyAddresses = []int64{
	0x01FC92DC, // Air Elemental
	0x01FC8BF4, // Assim
	0x01FC6C8C, // Bandit Boss 1
	0x01FC5E34, // Bandit Boss 2
	0x01FC5DAC, // Bandit Boss 3
	0x01FC5B04, // Bandit Boss 4
	0x01FC5A7C, // Bandit Boss 5
	0x01FC59F4, // Bandit Boss 6
	0x01FC651C, // Bandit Woodsman 1
	0x01FC5D24, // Bandit Woodsman 2
	0x01FC5C9C, // Bandit Woodsman 3
	0x01FC9A50, // Bear
	0x01FC8B6C, // Behrooz
	0x01FC9AD8, // Boar
	0x01FC98B8, // Cave Bear
	0x01FC83FC, // Chaos Lieutenant
	0x01FC8484, // Chaos Major
	0x01FC684C, // Chaos Mauler
	0x01FC66B4, // Chaos Scout
	0x01FC5FCC, // Chaos Slayer
	0x01FC662C, // Chaos Sorceror
	0x01FC6054, // Chaos Spellweaver
	0x01FC60DC, // Chaos Stormer
	0x01FC67C4, // Chaos Trooper
	0x01FC673C, // Chaos Warrior
	0x01FC6AF4, // Cyclops
	0x01FC99C8, // Darkenbat
	0x01FC97A8, // Dire Wolf
	0x01FCA0B0, // Dracovern
	0x01FC9364, // Dust Devil
	0x01FC93EC, // Earth Elemental
	0x01FC5C14, // Female Dryad
	0x01FC9474, // Fire Elemental
	0x01FC9144, // Firelord
	0x01FC9B60, // Giant Bat
	0x01FC9610, // Giant Boar
	0x01FC9254, // Giant Golem
	0x01FC9BE8, // Giant Rat
	0x01FC9C70, // Giant Scorpion
	0x01FC8D04, // Giant Skeleton
	0x01FC9CF8, // Giant Squid
	0x01FC68D4, // Goblin
	0x01FC61EC, // Goblin 2
	0x01FC640C, // Goblin Poisoner 1
	0x01FC62FC, // Goblin Poisoner 2
	0x01FC65A4, // Goblin Scout 1
	0x01FC6384, // Goblin Scout 2
	0x01FC695C, // Goblin Sergeant 1
	0x01FC6274, // Goblin Sergeant 2
	0x01FC8A5C, // Golnar
	0x01FC69E4, // Gorgon
	0x01FC9D80, // Gryphon
	0x01FC6A6C, // Harpy
	0x01FC9E08, // Hellhound
	0x01FC6B7C, // Hobgoblin 1
	0x01FC6164, // Hobgoblin 2
	0x01FC6C04, // Human Bandit 1
	0x01FC5F44, // Human Bandit 2
	0x01FC5EBC, // Human Bandit 3
	0x01FC850C, // Kitarak
	0x01FC88C4, // Ksathra
	0x01FC9940, // Large Scorpion
	0x01FC9698, // Lava Hound
	0x01FC6D14, // Lizard Man
	0x01FC8594, // Lizard Man Boss
	0x01FC6D9C, // Lizard Man Sgt
	0x01FC8E9C, // Lugash
	0x01FC5B8C, // Male Dryad
	0x01FC9E90, // Manticore
	0x01FC861C, // Marquis
	0x01FC89D4, // Mehrdad
	0x01FC6FBC, // Minotaur
	0x01FC8374, // Minotaur Lord
	0x01FC8AE4, // Nasim
	0x01FC6E24, // Ogre 1
	0x01FC6494, // Ogre 2
	0x01FC6EAC, // Ogre Boss
	0x01FC8C7C, // Plague Zombie
	0x01FC86A4, // Pochanargat
	0x01FC9F18, // Salamander
	0x01FC9FA0, // Sand Worm
	0x01FC872C, // Shadow
	0x01FC87B4, // Shamsuk
	0x01FC894C, // Shatrevar
	0x01FC883C, // Sheridan
	0x01FC8D8C, // Skeleton 1
	0x01FC8F24, // Skeleton 2
	0x01FC8E14, // Skeleton Archer
	0x01FC91CC, // Spirit Wolf
	0x01FC94FC, // Stone Golem
	0x01FC9830, // Tomb Rat
	0x01FC6F34, // Troll
	0x01FC9584, // Water Elemental
	0x01FC8FAC, // Wight
	0x01FCA028, // Wolf
	0x01FC9034, // Wraith
	0x01FC9720, // Wyvern
	0x01FC90BC, // Zombie
}

var AccessoryAddresses = []int64{
	0x01FCEB0C, // Amulet of Pork
	0x01FCD918, // Banner of Gwernia
	0x01FCD2E0, // Bardic Gloves
	0x01FCDA7C, // Belt of Life
	0x01FCDA50, // Belt of Teleport
	0x01FCDAD8, // Boots of Adamant
	0x01FCDB30, // Boots of Speed
	0x01FCDB88, // Boots of Striding
	0x01FCD49C, // Etherial Ring
	0x01FCD4F8, // Gem of Aspect
	0x01FCD524, // Gem of Sensing
	0x01FCD338, // Gloves of Healing
	0x01FCD9F4, // Harp of Igone
	0x01FCEB90, // Haste Amulet
	0x01FCEC14, // Heart of Elisheva
	0x01FCD0C8, // Helm of Charisma
	0x01FCD120, // Helm of Defense
	0x01FCD14C, // Helm of Tempests
	0x01FCD0F4, // Helm of Wisdom
	0x01FCD9C8, // Horn of Kynon
	0x01FCD390, // Jundar Gauntlets
	0x01FCD178, // Kendall's Hat
	0x01FCDB5C, // Leather Boots
	0x01FCD22C, // Leather Cloak
	0x01FCD444, // Lunar Ring
	0x01FCD3EC, // Magedrake Ring
	0x01FCEAE0, // Marquis' Amulet
	0x01FCDAA8, // Mercenary Belt
	0x01FCD284, // Mirari Cloak
	0x01FCEB38, // Mirror Amulet
	0x01FCD944, // Moon Gem
	0x01FCD418, // Namers Ring
	0x01FCD200, // Nightdrake Mantle
	0x01FCEBE8, // Pandara's Amulet
	0x01FCD258, // Phantom Cloak
	0x01FCD2B4, // Plate Gauntlets
	0x01FCDA24, // Reflection Belt
	0x01FCD3C0, // Ring of Healing
	0x01FCD4CC, // Rope
	0x01FCEC40, // Shamsuk Amulet
	0x01FCEB64, // Shield Amulet
	0x01FCD1A4, // Spiritdrake Helm
	0x01FCEBBC, // ST Gem
	0x01FCD970, // Stormbreaker
	0x01FCD364, // Stormdrake Claws
	0x01FCD30C, // Tinker's Gloves
	0x01FCD470, // Witch Ring
	0x01FCD1D0, // Wizard Hat
	0x01FCD99C, // Wizard's Wand
	0x01FCDB04, // Woodsman's Boots
}

var ArmorAddresses = []int64{
	0x01FCBA98, // Beast Hide
	0x01FCBB88, // Chainmail
	0x01FCBDF8, // Chaos Armor
	0x01FCB528, // Chaos Robes
	0x01FCBAF8, // Cloth Armor
	0x01FCBA38, // Darkenbat Hide
	0x01FCBC78, // Dragon Leather
	0x01FCBC48, // Enchanted Hide
	0x01FCBD98, // Enchanted Plate
	0x01FCBA08, // exp 1
	0x01FCB858, // exp 10
	0x01FCB828, // exp 11
	0x01FCB7F8, // exp 12
	0x01FCB7C8, // exp 13
	0x01FCB798, // exp 14
	0x01FCB768, // exp 15
	0x01FCB738, // exp 16
	0x01FCB708, // exp 17
	0x01FCB6D8, // exp 18
	0x01FCB6A8, // exp 19
	0x01FCB9D8, // exp 2
	0x01FCB678, // exp 20
	0x01FCB648, // exp 21
	0x01FCB618, // exp 22
	0x01FCB9A8, // exp 3
	0x01FCB978, // exp 4
	0x01FCB948, // exp 5
	0x01FCB918, // exp 6
	0x01FCB8E8, // exp 7
	0x01FCB8B8, // exp 8
	0x01FCB888, // exp 9
	0x01FCB5E8, // exp23
	0x01FCB5B8, // exp24
	0x01FCBBE8, // Full Platemail
	0x01FCBA68, // Hellhound Hide
	0x01FCBD38, // Iden Scale
	0x01FCBC18, // Improved Plate
	0x01FCB588, // Irondrake Plate
	0x01FCBCA8, // Jundar Leather
	0x01FCBB28, // Leather Armor
	0x01FCBBB8, // Partial Platemail
	0x01FCBD68, // Pome Scale
	0x01FCBDC8, // Royal Platemail
	0x01FCBB58, // Scale Armor
	0x01FCBAC8, // Scorpion scale
	0x01FCB558, // Sheridans Armor
	0x01FCBCD8, // Talewok Mail
	0x01FCBD08, // Terminor Mail
}

var ShieldAddresses = []int64{
	0x01FCC0FC, // Bronze Shield
	0x01FCBFDC, // Buckler
	0x01FCC1BC, // Chaos Shield
	0x01FCBE2C, // Crab Shield
	0x01FCBE8C, // Dryad Shield
	0x01FCC0CC, // Heater Shield
	0x01FCC18C, // Hoplite Shield
	0x01FCC12C, // Jundar Shield
	0x01FCC06C, // Kite Shield
	0x01FCC03C, // Large Shield
	0x01FCBF4C, // Moon Shield
	0x01FCBFAC, // Scorpion Shield
	0x01FCBEBC, // Sheridans Shield
	0x01FCC00C, // Small Shield
	0x01FCC15C, // Spirit Shield
	0x01FCBEEC, // Stardrake Aegis
	0x01FCBF7C, // Sun Shield
	0x01FCC09C, // Tower Shield
	0x01FCBF1C, // Turtleshell Shield
	0x01FCBE5C, // Wight Shield
}

var WeaponAddresses = []int64{
	0x01FCA5A0, // Air Fist
	0x01FCADBC, // Archmage's Staff
	0x01FCA904, // Battle Axe
	0x01FCA3B8, // Bear Bite
	0x01FCA934, // Blood Axe
	0x01FCB4C0, // Boar Tusk
	0x01FCAB48, // Bow of Accuracy
	0x01FCAB78, // Bow of Shielding
	0x01FCABA8, // Bow of Thunder
	0x01FCAD2C, // Breklor's Firestaff
	0x01FCB158, // Broadsword
	0x01FCA3E8, // Buzzard Bite
	0x01FCAAE4, // Chaos Deathwing
	0x01FCA814, // Chaos Flameblade
	0x01FCA844, // Chaos Maul
	0x01FCAAB4, // Chaos Scythe
	0x01FCACFC, // Chaos Staff
	0x01FCB1B8, // Chaos Sword
	0x01FCAEB4, // Chaos Tail
	0x01FCA964, // Club
	0x01FCA754, // Cyclops Club
	0x01FCB39C, // Cyclops Hurlstar
	0x01FCB188, // Dagger
	0x01FCB3CC, // Dart of Distance
	0x01FCA4AC, // Dragon Breath
	0x01FCA5D0, // Dragon Claws
	0x01FCB30C, // Dragon Fang
	0x01FCA600, // Earth Fist
	0x01FCAD8C, // Ehud's Staff
	0x01FCA8A4, // Elisheva's Scythe
	0x01FCB038, // Enchanted Blade
	0x01FCA268, // expansion 10
	0x01FCA238, // expansion 11
	0x01FCA208, // expansion 12
	0x01FCA1D8, // expansion 13
	0x01FCA1A8, // expansion 14
	0x01FCA178, // expansion 15
	0x01FCA388, // expansion 4
	0x01FCA358, // expansion 5
	0x01FCA328, // expansion 6
	0x01FCA2F8, // expansion 7
	0x01FCA2C8, // expansion 8
	0x01FCA298, // expansion 9
	0x01FCA630, // Fire Touch
	0x01FCB068, // Firedrake Fang
	0x01FCA4DC, // Gaze
	0x01FCA8D4, // Giant Axe
	0x01FCB248, // Gladius
	0x01FCA9C4, // Great Axe
	0x01FCAC08, // Great Bow
	0x01FCB1E8, // Great Sword
	0x01FCB45C, // Hatchet
	0x01FCABD8, // Heartseeker Bow
	0x01FCA724, // Hockey Stick
	0x01FCAC38, // Hunter's Bow
	0x01FCB098, // Ice Stiletto
	0x01FCACCC, // Ironwood Staff
	0x01FCB48C, // Javelin
	0x01FCA7E4, // Jester's Mace
	0x01FCAF78, // Lightreaver
	0x01FCA874, // Lizard King's Axe
	0x01FCB128, // Lodin's Sword
	0x01FCAC68, // Long Bow
	0x01FCB218, // Longsword
	0x01FCA9F4, // Mace
	0x01FCA7B4, // Mace of Glory
	0x01FCA510, // Marquis Touch
	0x01FCAA24, // Maul
	0x01FCB4F0, // Minotaur Butt
	0x01FCAA54, // Morningstar
	0x01FCADEC, // Pike
	0x01FCA540, // Plague Claw
	0x01FCB3FC, // Poison Dart
	0x01FCAB14, // Poleaxe
	0x01FCAEE4, // Pseudodragon Sting
	0x01FCA47C, // Pseudopod
	0x01FCA418, // Rat Bite
	0x01FCB278, // Sabre
	0x01FCAF14, // Scorpion Sting
	0x01FCA994, // Scythe
	0x01FCB008, // Sheridans Sword
	0x01FCAC98, // Short Bow
	0x01FCB2A8, // Short Sword
	0x01FCAE1C, // Spear
	0x01FCA784, // Spellbreaker Axe
	0x01FCB42C, // Spikes
	0x01FCA148, // Spirit Bite
	0x01FCAE4C, // Staff
	0x01FCAD5C, // Staff of Lugash
	0x01FCAFD8, // Stealthblade
	0x01FCAFA8, // Sword of Might
	0x01FCB2D8, // Tanto
	0x01FCA660, // Tentacle Slap
	0x01FCB33C, // Throwing Iron
	0x01FCB36C, // Throwing Knife
	0x01FCB0C8, // Trahern's Sword
	0x01FCA690, // Troll Claw
	0x01FCA570, // Unarmed
	0x01FCAE80, // Venom Spit
	0x01FCAA84, // War Hammer
	0x01FCB0F8, // Warfang
	0x01FCA448, // Wolf Bite
	0x01FCA6C0, // Wraith Touch
	0x01FCAF44, // Wyvern Sting
	0x01FCA6F0, // Zombie Fist
}

var WandAddresses = []int64{
	0x01FCD5D4, // Acid
	0x01FCD57C, // Banishing
	0x01FCD6B0, // Crushing Death
	0x01FCD708, // Darkness
	0x01FCD7E4, // Fireball
	0x01FCD6DC, // Frozen Doom
	0x01FCD7B8, // Gravity
	0x01FCD5A8, // Immolation
	0x01FCD734, // Light
	0x01FCD600, // Lightning
	0x01FCD78C, // Persuasion
	0x01FCD550, // Revival
	0x01FCD760, // Shielding
	0x01FCD658, // Starfire
	0x01FCD810, // Tap Stamina
	0x01FCD83C, // vs Elemental
	0x01FCD868, // vs Naming
	0x01FCD894, // vs Necromancy
	0x01FCD8C0, // vs Star
	0x01FCD8EC, // Wall of Bones
	0x01FCD684, // Web of Starlight
	0x01FCD62C, // Wraith Touch
}

var ScrollAddresses = []int64{
	0x01FCE3A0, // Detect Chaos
	0x01FCE374, // Detect Traps
	0x01FCE608, // Acid Bolt
	0x01FCDBB8, // Air Shield
	0x01FCE5DC, // Aura of Death
	0x01FCE584, // Banishing
	0x01FCE558, // Brilliance
	0x01FCE52C, // Charming
	0x01FCE500, // Cheat Death
	0x01FCE26C, // Clumsiness
	0x01FCE4D4, // Command
	0x01FCDBE4, // Control Elem
	0x01FCE450, // Crushing Death
	0x01FCE4A8, // Ctrl Marquis
	0x01FCE47C, // Ctrl Zombie
	0x01FCE424, // Darkness
	0x01FCDC10, // Debilitation
	0x01FCE348, // Dexterity
	0x01FCE31C, // Dispel Elem
	0x01FCE2F0, // Dispel Naming
	0x01FCE2C4, // Dispel Necro
	0x01FCE298, // Dispel Star
	0x01FCDC3C, // Dragon Flames
	0x01FCE3F8, // Dt Moon Phase
	0x01FCE3CC, // Dt Sun Phase
	0x01FCDC68, // Earth Smite
	0x01FCDDC8, // Endurance
	0x01FCDC94, // Escape
	0x01FCE0B4, // Exhaustion
	0x01FCE634, // Fireball
	0x01FCE240, // Frozen Doom
	0x01FCE214, // Haste
	0x01FCDCC0, // Immolation
	0x01FCE1E8, // Know Aspect
	0x01FCE1BC, // Light
	0x01FCDCEC, // Lightning
	0x01FCE190, // Mirror
	0x01FCE138, // Opening
	0x01FCDE20, // Oriana's Scroll
	0x01FCE10C, // Photosynth
	0x01FCDD18, // Remove Poison
	0x01FCDE4C, // Sense Aura
	0x01FCE0E0, // Shield of Starlight
	0x01FCE5B0, // Solar Wrath
	0x01FCE088, // Spirit Shield
	0x01FCE05C, // Stamina
	0x01FCE030, // Stealth
	0x01FCE004, // Stellar Grav
	0x01FCDD44, // Strength
	0x01FCE164, // Stupidity
	0x01FCDFD8, // Tap Stamina
	0x01FCDD70, // Teleport (Wraith Touch)
	0x01FCDFAC, // Teleport (Teleport)
	0x01FCDF80, // vs Elemental
	0x01FCDF54, // vs Naming
	0x01FCDF28, // vs Necromancy
	0x01FCDEFC, // vs Star
	0x01FCDED0, // Wall of Bones
	0x01FCDD9C, // Weakness
	0x01FCDEA4, // Web of Starlight
	0x01FCDE78, // Whitefire
	0x01FCDDF4, // Wind
}

var SpellAddresses = []int64{
	0x01FCC564, // Acid Bolt
	0x01FCC268, // Air Shield
	0x01FCC588, // Aura of Death
	0x01FCC41C, // Banishing
	0x01FCC3D4, // Brilliance
	0x01FCC440, // Charming
	0x01FCC540, // Cheat Death
	0x01FCC95C, // Clumsiness
	0x01FCC28C, // Control Elem
	0x01FCC464, // Control Marquis
	0x01FCC5D0, // Control Zombies
	0x01FCC5F4, // Crushing Death
	0x01FCC618, // Darkness
	0x01FCC2B0, // Debilitation
	0x01FCC8F0, // Detect Moon Phase
	0x01FCC914, // Detect Sun Phase
	0x01FCC488, // Detecting Traps
	0x01FCC938, // Dexterity
	0x01FCC7F0, // Dispel Elemental
	0x01FCC814, // Dispel Naming
	0x01FCC838, // Dispel Necro
	0x01FCC85C, // Dispel Star
	0x01FCC2D4, // Dragon Flames
	0x01FCC2F8, // Earth Smite
	0x01FCC4AC, // Endurance
	0x01FCC220, // Escape
	0x01FCC660, // Exhaustion
	0x01FCC31C, // Fireball
	0x01FCC980, // Frozen Doom
	0x01FCC63C, // Haste
	0x01FCC1FC, // Immolation
	0x01FCC9A4, // Light
	0x01FCC340, // Lightning
	0x01FCC73C, // Mirror
	0x01FCC4D0, // Opening
	0x01FCC884, // Photosynthesis
	0x01FCC718, // Poison
	0x01FCC244, // Remove Poison
	0x01FCC4F4, // Sense Aura
	0x01FCC8A8, // Solar Wrath
	0x01FCC6F0, // Spirit Shield
	0x01FCC684, // Stamina
	0x01FCC8CC, // Starlight Shield
	0x01FCC9C8, // Stealth
	0x01FCC9EC, // Stellar Gravity
	0x01FCC364, // Strength
	0x01FCC3F8, // Stupidity
	0x01FCC6A8, // Tap Stamina
	0x01FCC3B0, // Teleportation
	0x01FCC760, // vs. Elemental
	0x01FCC784, // vs. Naming
	0x01FCC7A8, // vs. Necromancy
	0x01FCC7CC, // vs. Star
	0x01FCC6CC, // Wall Of Bones
	0x01FCC518, // Weakness
	0x01FCCA10, // Web Of Starlight
	0x01FCCA34, // Whitefire
	0x01FCC388, // Wind
	0x01FCC5AC, // Wraith Touch
}
