package cli

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenario"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var helpTemplate = `Description:
  {{rpad .Long 10}}

Usage:{{if .Runnable}}{{if .HasAvailableFlags}}
  {{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if gt .Aliases 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample }}

Examples:
  {{ .Example }}{{end}}{{ if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimRightSpace}}{{end}}{{ if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimRightSpace}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsHelpCommand}}
{{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}
`

var (
	cmdOpts  scenario.CommandOptions
	logLevel string
	cfg      *viper.Viper
)

// Names of the settings that can be given as flags or as SCENARIO_ prefixed environment variables
var envSettings = []string{`confdir`, `datadir`, `hiera-config`, `loglevel`}

// NewCommand creates the scenario Command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: `Scenario - Classify nodes using scenario data`,
		Long: `Scenario - Classify nodes and compile their data bindings using the roles, class groups,
    hiera data, and data mappings of a scenario data directory.`,
		Version:           fmt.Sprintf("%v", getVersion()),
		PersistentPreRunE: initialize,
		SilenceErrors:     true}

	cfg = viper.New()
	cfg.SetEnvPrefix(`scenario`)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(`-`, `_`))

	flags := cmd.PersistentFlags()
	flags.StringVar(&logLevel, `loglevel`, `error`,
		`error/warn/info/debug`)
	flags.StringVar(&cmdOpts.Confdir, `confdir`, ``,
		`the configuration directory. Defaults to the current directory`)
	flags.StringVar(&cmdOpts.DataDir, `datadir`, ``,
		`the scenario data directory. Overrides <confdir>/data`)
	flags.StringVar(&cmdOpts.HieraConfig, `hiera-config`, ``,
		`path to the file that contains the hierarchy. Overrides <confdir>/hiera.yaml`)
	flags.StringVar(&cmdOpts.RenderAs, `render-as`, ``,
		`s/json/yaml: Specify the output format of the results; s means plain text`)
	flags.StringArrayVar(&cmdOpts.VarPaths, `vars`, nil,
		`path to a JSON or YAML file that contains key-value mappings to become variables`)
	flags.StringArrayVar(&cmdOpts.Variables, `var`, nil,
		`a key:value or key=value where value is a literal string or a YAML flow value`)
	flags.StringArrayVar(&cmdOpts.FactPaths, `facts`, nil,
		`like --vars but will also make variables available under the "facts" key`)
	flags.BoolVar(&cmdOpts.Interpolate, `interpolate`, false,
		`interpolate compiled hiera data using the scope`)

	for _, s := range envSettings {
		// Errors are only returned for a nil flag
		_ = cfg.BindPFlag(s, flags.Lookup(s))
		_ = cfg.BindEnv(s)
	}

	cmd.AddCommand(
		newNodeCommand(),
		newClassesCommand(),
		newCompileCommand(),
		newLookupCommand(),
		newRolesCommand(),
		newScenarioNameCommand(),
		newCheckCommand())

	cmd.SetHelpTemplate(helpTemplate)
	return cmd
}

func initialize(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cmdOpts.Confdir = cfg.GetString(`confdir`)
	cmdOpts.DataDir = cfg.GetString(`datadir`)
	cmdOpts.HieraConfig = cfg.GetString(`hiera-config`)
	logLevel = cfg.GetString(`loglevel`)
	switch scenario.RenderName(cmdOpts.RenderAs) {
	case ``, scenario.YAML, scenario.JSON, scenario.Text:
	default:
		return fmt.Errorf(`unknown rendering '%s'`, cmdOpts.RenderAs)
	}
	issue.IncludeStacktrace(logLevel == `debug`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:   `scenario`,
		Level:  hclog.LevelFromString(logLevel),
		Output: cmd.ErrOrStderr(),
	}
	return nil
}

func renderAs() scenario.RenderName {
	if cmdOpts.RenderAs == `` {
		return scenario.YAML
	}
	return scenario.RenderName(cmdOpts.RenderAs)
}

func newResolver() *scenario.Resolver {
	return cmdOpts.NewResolver(hclog.New(hclog.DefaultOptions), nil)
}

func newNodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   `node <name>`,
		Short: `Classify a node`,
		Long:  `Classify a node and output its role, classes, and parameters`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := newResolver().GetNodeFromName(args[0])
			if err != nil {
				return err
			}
			return scenario.Render(renderAs(), node.ToMap(), cmd.OutOrStdout())
		}}
	cmd.Flags().StringVar(&cmdOpts.FactsDir, `facts-dir`, ``,
		`directory containing a <node name>.yaml file with the facts of the node`)
	return cmd
}

func newClassesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `classes <role>`,
		Short: `Get all classes of a role`,
		Long:  `Get the expanded list of classes of a role in the current scenario`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := cmdOpts.CreateScope()
			if err != nil {
				return err
			}
			classes, err := newResolver().GetClassesFromRole(args[0], scope)
			if err != nil {
				return err
			}
			return scenario.RenderStrings(renderAs(), classes, cmd.OutOrStdout())
		}}
}

func newCompileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `compile <role>`,
		Short: `Compile an entire role`,
		Long:  `Compile the data bindings of every class of a role in the current scenario`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := cmdOpts.CreateScope()
			if err != nil {
				return err
			}
			classes, err := newResolver().CompileEverything(args[0], scope)
			if err != nil {
				return err
			}
			return scenario.Render(renderAs(), classes, cmd.OutOrStdout())
		}}
}

func newLookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   `lookup <key>`,
		Short: `Lookup a key`,
		Long:  `Lookup a key in the hiera data or the data mappings of the current scenario`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := scenario.LookupAndRender(&cmdOpts, hclog.New(hclog.DefaultOptions), args[0], cmd.OutOrStdout())
			if err == nil && !found {
				err = scenarioapi.Error(scenarioapi.KeyNotFound, issue.H{`key`: args[0]})
			}
			return err
		}}
	cmd.Flags().BoolVar(&cmdOpts.ExplainData, `explain`, false,
		`Explain the details of how the lookup was performed and where the final value came from`)
	return cmd
}

func newRolesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `roles`,
		Short: `List all roles`,
		Long:  `List all roles of the current scenario together with their classes`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, err := cmdOpts.CreateScope()
			if err != nil {
				return err
			}
			roles, err := newResolver().GetAllRoles(scope)
			if err != nil {
				return err
			}
			return scenario.Render(renderAs(), roles, cmd.OutOrStdout())
		}}
}

func newScenarioNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `scenario-name`,
		Short: `Output the name of the current scenario`,
		Long:  `Output the name of the scenario defined in config.yaml`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := newResolver().GetScenarioName()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		}}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `check`,
		Short: `Check the scenario data`,
		Long:  `Load and expand the config, the scenario, the role mappings, all class groups, and all data mappings and report every problem found`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			errs := newResolver().Check()
			out := cmd.OutOrStdout()
			for _, err := range errs {
				if _, err = fmt.Fprintln(out, err.Error()); err != nil {
					return err
				}
			}
			if len(errs) > 0 {
				return fmt.Errorf(`found %d problem(s)`, len(errs))
			}
			_, err := fmt.Fprintln(out, `OK`)
			return err
		}}
}
