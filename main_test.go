package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidynedit/rom"
	"aidynedit/tables"
	"aidynedit/utils"
)

// TODO: share the synthetic ROM builder with rom/rom_test.go once there's a testutil package.

func test_name(addr int64) string {
	return fmt.Sprintf("N%08X", addr)
}

// test_rom writes a sparse ROM whose data is all zero and whose names are unique.
func test_rom(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aidyn.z64")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(0x01FE0000))
	write := func(a int64) {
		_, err := f.WriteAt([]byte(test_name(a)), a)
		require.NoError(t, err)
	}
	for _, k := range tables.Kinds {
		for _, a := range k.Addresses {
			write(a)
		}
	}
	for _, refs := range [][]tables.Ref{tables.ItemRefs, tables.SpellRefs, tables.LootRefs} {
		for _, r := range refs {
			if r.Address > 0xFF {
				write(r.Address)
			}
		}
	}
	require.NoError(t, f.Close())
	return path
}

// run executes the CLI with an ini file that doesn't exist, so only flags count.
func run(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	root := new_root_cmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--rom", path, "--config", filepath.Join(t.TempDir(), "none.ini"), "--no-backup"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestKinds(t *testing.T) {
	out, err := run(t, "", "kinds")
	require.NoError(t, err)
	for _, k := range tables.Kinds {
		assert.Contains(t, out, k.Name)
	}
}

func TestNoROM(t *testing.T) {
	_, err := run(t, "", "list", "party")
	assert.True(t, errors.Is(err, ErrNoROM))
}

func TestROMFromIni(t *testing.T) {
	path := test_rom(t)
	ini := filepath.Join(t.TempDir(), "aidynedit.ini")
	require.NoError(t, os.WriteFile(ini, []byte("rom = "+path+"\nbackup = false\n"), 0o644))

	root := new_root_cmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", ini, "list", "spell"})
	require.NoError(t, root.Execute())
	assert.Equal(t, len(tables.Spell.Addresses), strings.Count(out.String(), "\n"))
}

func TestListAndGet(t *testing.T) {
	path := test_rom(t)
	out, err := run(t, path, "list", "par")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(tables.Party.Addresses))
	assert.Contains(t, lines[0], "   1  N01FC7BFC")

	out, err = run(t, path, "get", "party", "n01fc7ea4")
	require.NoError(t, err)
	assert.Contains(t, out, "N01FC7EA4 (party at 0x01FC7EA4)")
	assert.Contains(t, out, "school")
	assert.Contains(t, out, "Chaos")

	out, err = run(t, path, "get", "enemy", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "0 (0 XP)")
}

func TestSet(t *testing.T) {
	path := test_rom(t)
	target := test_name(tables.Spell.Addresses[0])

	out, err := run(t, path, "set", "spell", target, "damage=300", "scho=star", "aspect=sol", "--rename", "Big Bang")
	require.NoError(t, err)
	assert.Contains(t, out, "Big Bang (spell")
	assert.Regexp(t, `damage\s+255`, out)
	assert.Regexp(t, `school\s+Star`, out)
	assert.Regexp(t, `aspect\s+Solar`, out)

	out, err = run(t, path, "get", "spell", "big bang")
	require.NoError(t, err)
	assert.Regexp(t, `damage\s+255`, out)

	_, err = run(t, path, "set", "spell", "big bang", "damage")
	assert.True(t, errors.Is(err, ErrAssignment))

	_, err = run(t, path, "set", "spell", "big bang", "colour=red")
	assert.True(t, errors.Is(err, utils.ErrNoMatch))

	_, err = run(t, path, "set", "spell", "big bang")
	assert.Error(t, err)
}

func TestRenameToBlank(t *testing.T) {
	path := test_rom(t)
	target := test_name(tables.Spell.Addresses[0])

	_, err := run(t, path, "set", "spell", target, "--rename", " ")
	assert.True(t, errors.Is(err, rom.ErrBlankName), "got %v", err)

	out, err := run(t, path, "get", "spell", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)
}

func TestSetBlankSkill(t *testing.T) {
	path := test_rom(t)
	_, err := run(t, path, "set", "party", "1", "Wizard=", "Healer=12")
	require.NoError(t, err)

	out, err := run(t, path, "get", "party", "1")
	require.NoError(t, err)
	assert.Regexp(t, `Wizard\s+-`, out)
	assert.Regexp(t, `Healer\s+10`, out, "clamped to the skill maximum")
}

func TestBackupOnFirstWrite(t *testing.T) {
	path := test_rom(t)
	root := new_root_cmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--rom", path, "--config", filepath.Join(t.TempDir(), "none.ini"), "set", "scroll", "1", "value=10"})
	require.NoError(t, root.Execute())
	_, err := os.Stat(rom.Backup_path(path))
	assert.NoError(t, err)
}

func TestValues(t *testing.T) {
	path := test_rom(t)
	out, err := run(t, path, "values", "weapon", "type")
	require.NoError(t, err)
	assert.Contains(t, out, "weapon.type: weapon_type")
	assert.Contains(t, out, "Sword")

	out, err = run(t, path, "values", "loot", "gold_min")
	require.NoError(t, err)
	assert.Contains(t, out, "0-65535")

	out, err = run(t, path, "values", "scroll")
	require.NoError(t, err)
	assert.Contains(t, out, "cast_level")
}

func TestShop(t *testing.T) {
	path := test_rom(t)
	out, err := run(t, path, "shop", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "   1  Erromon : N01FC7EA4")

	out, err = run(t, path, "shop", "get", "dryad")
	require.NoError(t, err)
	assert.Contains(t, out, "Talewok : Dryad")
	assert.Contains(t, out, "no inventory")

	out, err = run(t, path, "shop", "set", "2", "slot1=acid flask", "Warrior=3", "shield_skill=")
	require.NoError(t, err)
	assert.Regexp(t, `slot1\s+\(potion\) Acid Flask`, out)
	assert.Regexp(t, `Warrior\s+3`, out)
	assert.Regexp(t, `shield_skill\s+-`, out)

	_, err = run(t, path, "shop", "get", "99")
	assert.True(t, errors.Is(err, rom.ErrNothingSelected))
}

func TestCheckAndBackup(t *testing.T) {
	path := test_rom(t)
	out, err := run(t, path, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	out, err = run(t, path, "backup")
	require.NoError(t, err)
	assert.Contains(t, out, rom.Backup_path(path))

	_, err = run(t, filepath.Join(t.TempDir(), "aidyn.n64"), "check")
	assert.True(t, errors.Is(err, rom.ErrNotROM))
}
