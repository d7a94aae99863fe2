package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bethropolis/tide-astyle/internal/app"
	"github.com/bethropolis/tide-astyle/internal/i18n"
	"github.com/bethropolis/tide-astyle/internal/tui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Edit the AStyle options in a terminal panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := rt.settingsManager()
			if err != nil {
				return err
			}
			result, err := app.RunConfigPanel(m)
			if err != nil {
				return err
			}
			if result == tui.ResultCommitted {
				fmt.Fprintln(cmd.OutOrStdout(), m.Text(i18n.MsgSettingsSaved))
			}
			return nil
		},
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd(), newConfigResetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the settings file path and values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := rt.settingsManager()
			if err != nil {
				return err
			}
			s := m.Settings()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", m.Text(i18n.MsgOptionFile), m.Path())
			fmt.Fprintf(out, "%s %s\n", m.Text(i18n.MsgOptions), s.OptionString)
			fmt.Fprintf(out, "%s %s\n", m.Text(i18n.MsgLanguage), s.Language.Code())
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var options, language string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change and save the option string or the UI language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			optionsSet := cmd.Flags().Changed("options")
			languageSet := cmd.Flags().Changed("language")
			if !optionsSet && !languageSet {
				return errors.New("nothing to set: pass --options and/or --language")
			}
			m, err := rt.settingsManager()
			if err != nil {
				return err
			}
			s := m.Settings()
			if optionsSet {
				s.OptionString = options
			}
			if languageSet {
				locale, err := i18n.ParseLocale(language)
				if err != nil {
					notify(fmt.Sprintf("%s: %s", m.Text(i18n.MsgInvalidLanguage), language))
					return err
				}
				s.Language = locale
			}
			if err := m.Apply(s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Text(i18n.MsgSettingsSaved))
			return nil
		},
	}
	cmd.Flags().StringVarP(&options, "options", "o", "", "AStyle option string, e.g. \"--style=kr -s4\"")
	cmd.Flags().StringVarP(&language, "language", "l", "", "UI language (de, en)")
	return cmd
}

func newConfigResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore and save the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := rt.settingsManager()
			if err != nil {
				return err
			}
			m.Reset()
			if err := m.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Text(i18n.MsgSettingsSaved))
			return nil
		},
	}
}
