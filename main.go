package main

// ROM editor for Aidyn Chronicles (N64, .z64 images)
//
// example usage:
//
// aidynedit --rom "Aidyn Chronicles.z64" list party
// aidynedit get party alaron
// aidynedit set party alaron Wizard=5 Intelligence=30 weapon1="Long Sword"
// aidynedit set spell 3 damage=120 --rename "Big Bang"
// aidynedit values weapon type
// aidynedit shop get "Gwernia : Shop"
// aidynedit shop set 12 slot1="(potion) Healing Potion" spell1=Fireball
// aidynedit dump enemy
//
// The ROM comes from --rom, or from the "rom" key of aidynedit.ini.

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"aidynedit/config"
	"aidynedit/logging"
	"aidynedit/rom"
)

var ErrNoROM = errors.New("no ROM given: use --rom or set rom in " + config.DEFAULT_FILE)

// options are the persistent flags.
type options struct {
	rom       string
	config    string
	log_level string
	no_backup bool
}

func (o *options) logger(out io.Writer, cfg config.Config) hclog.Logger {
	level := config.Pick(o.log_level, cfg.LogLevel, logging.GetLogLevel())
	return logging.NewLogger("aidynedit", level, out)
}

// session opens the ROM named by flag or ini file.
func (o *options) session(cmd *cobra.Command) (*rom.Session, error) {
	cfg, err := config.Load(o.config)
	if err != nil {
		return nil, err
	}
	path := config.Pick(o.rom, cfg.ROM, "")
	if path == "" {
		return nil, ErrNoROM
	}
	return rom.Open(path,
		rom.WithLogger(o.logger(cmd.ErrOrStderr(), cfg)),
		rom.WithBackup(cfg.Backup && !o.no_backup),
	)
}

func new_root_cmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "aidynedit",
		Short: "Aidyn Chronicles ROM editor",
		Long: `Aidyn Chronicles ROM editor

Reads and edits characters, enemies, loot tables, items, spells and shops
directly in a .z64 ROM image.

It is usually not necessary to type the full name of something:
"alar" will be recognized as "Alaron". A number picks a record by its
position in "list".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&o.rom, "rom", "r", "", "Path to the ROM (.z64)")
	root.PersistentFlags().StringVarP(&o.config, "config", "c", config.DEFAULT_FILE, "Path to the ini file")
	root.PersistentFlags().StringVar(&o.log_level, "log-level", "", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&o.no_backup, "no-backup", false, "Don't back up the ROM before the first write")

	root.AddCommand(
		kinds_cmd(),
		list_cmd(o),
		get_cmd(o),
		set_cmd(o),
		values_cmd(o),
		dump_cmd(o),
		shop_cmd(o),
		backup_cmd(o),
		check_cmd(o),
		watch_cmd(o),
	)
	return root
}

func main() {
	err := main2(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main2(args []string) error {
	root := new_root_cmd()
	root.SetArgs(args)
	return root.Execute()
}
