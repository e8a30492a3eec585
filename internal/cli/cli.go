package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitplanner/bitplanner/internal/config"
	"github.com/bitplanner/bitplanner/internal/logger"
	"github.com/bitplanner/bitplanner/render"
	"github.com/bitplanner/bitplanner/settings"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	yamlv3 "gopkg.in/yaml.v3"
)

const maxSuggestions = 3

func InitCLI() *cobra.Command {
	RootCmd := &cobra.Command{
		Use:           "bitplanner",
		Short:         "bitplanner views and edits the planner's user settings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			logger.SetupLogger(cfg.LogLevel)
			logrus.WithField("path", cfg.ConfigPath).Debug("using settings file")

			settings.SetDefault(settings.New(cfg.ConfigPath))
			settings.Load()
			return nil
		},
	}

	config.BindFlags(RootCmd)

	RootCmd.AddCommand(
		newPathCmd(),
		newShowCmd(),
		newGetCmd(),
		newSetCmd(),
		newSkillCmd(),
		newResetCmd(),
		newUICmd(),
	)

	return RootCmd
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), settings.Default().Path())
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every setting with its effective value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSnapshot(cmd.OutOrStdout(), settings.Default().Snapshot(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml, json or toml")
	return cmd
}

func writeSnapshot(w io.Writer, snapshot map[string]map[string]any, format string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err = yamlv3.Marshal(snapshot)
	case "json":
		data, err = json.MarshalIndent(snapshot, "", "  ")
		data = append(data, '\n')
	case "toml":
		data, err = toml.Marshal(snapshot)
	default:
		return fmt.Errorf("unknown format %q: want yaml, json or toml", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [name]",
		Short: "Print one setting, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := settings.Default()
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, f := range settings.Fields() {
					fmt.Fprintf(out, "%s = %v\n", f.Name, f.Get(s))
				}
				return nil
			}

			f, err := lookupField(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, f.Get(s))
			return nil
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Change one setting and save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupField(args[0])
			if err != nil {
				return err
			}
			s := settings.Default()
			if err := f.Set(s, args[1]); err != nil {
				return err
			}
			settings.Save()
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", f.Name, f.Get(s))
			return nil
		},
	}
}

func newSkillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "View and edit stored skill levels",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print stored skill levels by skill id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := settings.Default().SkillLevels()
			ids := maps.Keys(levels)
			slices.Sort(ids)
			for _, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", id, levels[id])
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <id> <level>",
		Short: "Store the level of one skill and save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid skill id %q", args[0])
			}
			level, err := strconv.ParseUint(args[1], 10, 0)
			if err != nil {
				return fmt.Errorf("invalid skill level %q", args[1])
			}
			settings.Default().SetSkillLevel(id, uint(level))
			settings.Save()
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", id, level)
			return nil
		},
	})

	return cmd
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop every stored setting so defaults apply, and save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings.Default().Reset()
			settings.Save()
			return nil
		},
	}
}

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the settings window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			render.Run(settings.Default())
			return nil
		},
	}
}

func lookupField(name string) (settings.Field, error) {
	if f, ok := settings.LookupField(name); ok {
		return f, nil
	}
	err := fmt.Errorf("unknown setting %q", name)
	if suggestions := suggestFields(name); len(suggestions) > 0 {
		err = fmt.Errorf("%w, did you mean: %s", err, strings.Join(suggestions, ", "))
	}
	return settings.Field{}, err
}

// suggestFields returns the field names closest to name.
func suggestFields(name string) []string {
	names := settings.FieldNames()
	pattern := strings.ToLower(name)
	matches := fuzzy.Find(pattern, names)
	if len(matches) == 0 {
		// retry with the part after the section, e.g. "width"
		if i := strings.LastIndex(pattern, "."); i >= 0 && i < len(pattern)-1 {
			matches = fuzzy.Find(pattern[i+1:], names)
		}
	}

	var out []string
	for _, match := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, match.Str)
	}
	return out
}
