// Command scenarioserver starts a REST server that classifies nodes and compiles their data bindings.
package main

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/scenario/scenario"
	"github.com/lyraproj/scenario/scenarioapi"
	"github.com/spf13/cobra"
)

func main() {
	cmd := newCommand()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

var (
	logLevel string
	addr     string
	cmdOpts  scenario.CommandOptions
	port     int
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: `Server - Start a scenario REST server`,
		Long: `Server - Start a REST server that classifies nodes using scenario data.
  Responds under the /node, /role, /lookup, /roles, and /scenario endpoints`,
		PreRun: initialize,
		RunE:   startServer,
		Args:   cobra.NoArgs}

	flags := cmd.Flags()
	flags.StringVar(&logLevel, `loglevel`, `error`, `error/warn/info/debug`)
	flags.StringVar(&cmdOpts.Confdir, `confdir`, `/etc/scenario`, `the configuration directory`)
	flags.StringVar(&cmdOpts.DataDir, `datadir`, ``, `the scenario data directory. Overrides <confdir>/data`)
	flags.StringVar(&cmdOpts.HieraConfig, `hiera-config`, ``, `path to the file that contains the hierarchy. Overrides <confdir>/hiera.yaml`)
	flags.StringVar(&cmdOpts.FactsDir, `facts-dir`, ``, `directory containing a <node name>.yaml file with the facts of each node`)
	flags.StringArrayVar(&cmdOpts.VarPaths, `vars`, nil, `path to a JSON or YAML file that contains key-value mappings to become variables`)
	flags.StringArrayVar(&cmdOpts.Variables, `var`, nil, `variable as a key:value or key=value`)
	flags.BoolVar(&cmdOpts.Interpolate, `interpolate`, false, `interpolate compiled hiera data using the scope`)
	flags.StringVar(&addr, `addr`, ``, `ip address to listen on`)
	flags.IntVar(&port, `port`, 8080, `port number to listen to`)
	return cmd
}

func initialize(_ *cobra.Command, _ []string) {
	issue.IncludeStacktrace(logLevel == `debug`)
	hclog.DefaultOptions = &hclog.LoggerOptions{
		Name:  `scenarioserver`,
		Level: hclog.LevelFromString(logLevel),
	}
}

func startServer(cmd *cobra.Command, _ []string) error {
	e := newRouter(cmdOpts, hclog.New(hclog.DefaultOptions))
	e.Logger.SetOutput(cmd.OutOrStdout())
	return e.Start(addr + ":" + strconv.Itoa(port))
}

type handler func(r *scenario.Resolver, scope *scenarioapi.Map, c echo.Context) (scenarioapi.Value, error)

// newRouter creates the echo instance that serves all endpoints. Every request uses its own
// Resolver.
func newRouter(opts scenario.CommandOptions, logger hclog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	serve := func(h handler) echo.HandlerFunc {
		return func(c echo.Context) error {
			scope, err := opts.CreateScope()
			if err != nil {
				return errorResponse(c, err)
			}
			qp := c.QueryParams()
			names := make([]string, 0, len(qp))
			for k := range qp {
				names = append(names, k)
			}
			sort.Strings(names)
			for _, k := range names {
				scope.Put(k, scenarioapi.String(qp.Get(k)))
			}
			v, err := h(opts.NewResolver(logger, nil), scope, c)
			if err != nil {
				return errorResponse(c, err)
			}
			out := bytes.Buffer{}
			if err = scenario.Render(scenario.JSON, v, &out); err != nil {
				return err
			}
			return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, out.Bytes())
		}
	}

	e.GET(`/node/:name`, serve(getNode))
	e.GET(`/node/:name/binding/:key`, serve(getNodeBinding))
	e.GET(`/role/:role/classes`, serve(getRoleClasses))
	e.GET(`/role/:role/compile`, serve(compileRole))
	e.GET(`/lookup/:key`, serve(lookupKey))
	e.GET(`/roles`, serve(getRoles))
	e.GET(`/scenario`, serve(getScenario))
	return e
}

func errorResponse(c echo.Context, err error) error {
	if rp, ok := err.(issue.Reported); ok {
		status := http.StatusBadRequest
		switch rp.Code() {
		case scenarioapi.KeyNotFound, scenarioapi.UnknownRole:
			status = http.StatusNotFound
		}
		return c.JSON(status, map[string]string{`message`: rp.Error()})
	}
	return err
}

func getNode(r *scenario.Resolver, _ *scenarioapi.Map, c echo.Context) (scenarioapi.Value, error) {
	node, err := r.GetNodeFromName(c.Param(`name`))
	if err != nil {
		return nil, err
	}
	return node.ToMap(), nil
}

func getNodeBinding(r *scenario.Resolver, _ *scenarioapi.Map, c echo.Context) (scenarioapi.Value, error) {
	node, err := r.GetNodeFromName(c.Param(`name`))
	if err != nil {
		return nil, err
	}
	key := c.Param(`key`)
	v, ok, err := node.DataBinding(key, c.QueryParam(`interpolate`) == `true`)
	if err == nil && !ok {
		err = scenarioapi.Error(scenarioapi.KeyNotFound, issue.H{`key`: key})
	}
	return v, err
}

func getRoleClasses(r *scenario.Resolver, scope *scenarioapi.Map, c echo.Context) (scenarioapi.Value, error) {
	classes, err := r.GetClassesFromRole(c.Param(`role`), scope)
	if err != nil {
		return nil, err
	}
	return scenarioapi.StringList(classes...), nil
}

func compileRole(r *scenario.Resolver, scope *scenarioapi.Map, c echo.Context) (scenarioapi.Value, error) {
	classes, err := r.CompileEverything(c.Param(`role`), scope)
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func lookupKey(r *scenario.Resolver, scope *scenarioapi.Map, c echo.Context) (scenarioapi.Value, error) {
	return r.GetHieraDataFromKey(c.Param(`key`), scope)
}

func getRoles(r *scenario.Resolver, scope *scenarioapi.Map, _ echo.Context) (scenarioapi.Value, error) {
	roles, err := r.GetAllRoles(scope)
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func getScenario(r *scenario.Resolver, _ *scenarioapi.Map, _ echo.Context) (scenarioapi.Value, error) {
	name, err := r.GetScenarioName()
	if err != nil {
		return nil, err
	}
	return scenarioapi.String(name), nil
}
