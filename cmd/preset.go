package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlab/riftmetrics/internal/storage"
)

var presetSaveFilter filterFlags

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage stored filter presets",
	Long: `Save, list, show, and delete named filter presets. A preset captures a
complete filter configuration; applying one elsewhere (--preset) replaces
whatever criteria were active.`,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the given filter flags under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetSave,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetList,
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one preset's criteria as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

func init() {
	presetSaveFilter.register(presetSaveCmd)
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetDeleteCmd)
}

func openPresetStore() (*storage.DB, error) {
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open preset store: %w", err)
	}
	return db, nil
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	c, err := presetSaveFilter.criteria()
	if err != nil {
		return err
	}
	if c.IsEmpty() {
		return fmt.Errorf("refusing to save an empty preset: set at least one filter flag")
	}

	db, err := openPresetStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SavePreset(args[0], c); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Saved preset %q.\n", args[0])
	return nil
}

func runPresetList(cmd *cobra.Command, args []string) error {
	db, err := openPresetStore()
	if err != nil {
		return err
	}
	defer db.Close()

	presets, err := db.ListPresets(os.Stderr)
	if err != nil {
		return err
	}
	if len(presets) == 0 {
		fmt.Fprintln(os.Stdout, "No presets stored. Save one with 'riftmetrics preset save <name> [filter flags]'.")
		return nil
	}
	for _, p := range presets {
		fmt.Fprintf(os.Stdout, "  %-20s  saved %s\n", p.Name, p.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runPresetShow(cmd *cobra.Command, args []string) error {
	db, err := openPresetStore()
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := db.GetPreset(args[0])
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(p.Criteria, "", "  ")
	if err != nil {
		return fmt.Errorf("encode criteria: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

func runPresetDelete(cmd *cobra.Command, args []string) error {
	db, err := openPresetStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeletePreset(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Deleted preset %q.\n", args[0])
	return nil
}
