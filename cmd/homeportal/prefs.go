package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/user/homeportal/internal/i18n"
	"github.com/user/homeportal/internal/model"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change stored preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored language and theme",
	Args:  cobra.NoArgs,
	RunE:  runPrefsGet,
}

var prefsSetCmd = &cobra.Command{
	Use:       "set <lang|theme> <value>",
	Short:     "Store the language (zh, en) or theme (day, night)",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"lang", "theme"},
	RunE:      runPrefsSet,
}

func init() {
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
}

func runPrefsGet(cmd *cobra.Command, args []string) error {
	p, closePrefs, err := openPrefs()
	if err != nil {
		return err
	}
	defer closePrefs()

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Width(8)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86"))

	cur := p.Load()
	fmt.Println(labelStyle.Render("lang") + valueStyle.Render(string(cur.Locale)))
	fmt.Println(labelStyle.Render("theme") + valueStyle.Render(string(cur.Theme)))
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	p, closePrefs, err := openPrefs()
	if err != nil {
		return err
	}
	defer closePrefs()

	switch args[0] {
	case "lang":
		loc, ok := i18n.ParseLocale(args[1])
		if !ok {
			return fmt.Errorf("unsupported language %q", args[1])
		}
		if err := p.SetLocale(loc); err != nil {
			return err
		}
		fmt.Printf("lang set to %s\n", loc)
	case "theme":
		theme, ok := model.ParseTheme(args[1])
		if !ok {
			return fmt.Errorf("unsupported theme %q", args[1])
		}
		if err := p.SetTheme(theme); err != nil {
			return err
		}
		fmt.Printf("theme set to %s\n", theme)
	default:
		return fmt.Errorf("unknown preference %q (want lang or theme)", args[0])
	}
	return nil
}
