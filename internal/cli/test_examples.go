package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/golemcloud/golem-examples/internal/instantiate"
	"github.com/golemcloud/golem-examples/internal/model"
	"github.com/golemcloud/golem-examples/internal/toolchain"
)

// testPackageName is the package every generated test component uses.
const testPackageName = "golem:component"

var (
	testFilter string
	testTarget string
)

var testExamplesCmd = &cobra.Command{
	Use:   "test-examples",
	Short: "Generate and build the example components",
	Long: `Generate every example (or those whose name contains --filter) as
<target>/<example>-comp and run its language's build steps inside it.

A summary is printed at the end; the command fails if any example failed.`,
	Args: cobra.NoArgs,
	RunE: runTestExamples,
}

func init() {
	testExamplesCmd.Flags().StringVarP(&testFilter, "filter", "f", "", "Only test examples whose name contains this string")
	testExamplesCmd.Flags().StringVar(&testTarget, "target", "examples-test", "Directory the test components are generated in")
	rootCmd.AddCommand(testExamplesCmd)
}

type testResult struct {
	name model.ExampleName
	err  error
}

func runTestExamples(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tester := &exampleTester{
		inst: instantiate.New(s.catalog, logger),
		runner: &toolchain.Runner{
			Stdout:  out,
			Stderr:  cmd.ErrOrStderr(),
			Timeout: s.settings.TestTimeout,
			Logger:  logger,
		},
		target: testTarget,
		out:    out,
	}

	var results []testResult
	for _, ex := range s.index.Match(testFilter) {
		err := tester.test(cmd, ex)
		if err != nil {
			fmt.Fprintln(out, failStyle.Render(err.Error()))
		}
		results = append(results, testResult{name: ex.Name, err: err})
	}

	failed := 0
	fmt.Fprintln(out)
	for _, r := range results {
		fmt.Fprintln(out, renderResult(string(r.name), r.err))
		if r.err != nil {
			failed++
		}
	}
	fmt.Fprintln(out)

	if failed > 0 {
		return fmt.Errorf("%d of %d examples failed", failed, len(results))
	}
	return nil
}

type exampleTester struct {
	inst   *instantiate.Instantiator
	runner *toolchain.Runner
	target string
	out    io.Writer
}

// test generates ex as <target>/<name>-comp and builds it.
func (e *exampleTester) test(cmd *cobra.Command, ex model.Example) error {
	componentName := model.ComponentName(string(ex.Name) + "-comp")
	componentPath := filepath.Join(e.target, componentName.String())

	fmt.Fprintln(e.out)
	fmt.Fprintf(e.out, "%s %s\n", nameStyle.Render("Generating and testing:"), valueStyle.Render(string(ex.Name)))
	fmt.Fprintf(e.out, "Component path: %s\n", valueStyle.Render(componentPath))

	if _, err := os.Stat(componentPath); err == nil {
		logger.Info("deleting previous output", "path", componentPath)
		if err := os.RemoveAll(componentPath); err != nil {
			return fmt.Errorf("removing %s: %w", componentPath, err)
		}
	}

	_, err := e.inst.Instantiate(ex, model.ExampleParameters{
		ComponentName: componentName,
		PackageName:   model.MustParsePackageName(testPackageName),
		TargetPath:    e.target,
	})
	if err != nil {
		return fmt.Errorf("instantiate failed: %w", err)
	}

	steps, err := toolchain.StepsFor(ex.Language)
	if err != nil {
		return err
	}
	return e.runner.Run(cmd.Context(), componentPath, steps)
}
