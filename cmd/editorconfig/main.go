// Command editorconfig resolves the EditorConfig properties that apply
// to one or more files and prints them.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dobbo-ca/editorconfig-core-go/pkg/econfig"
	"github.com/dobbo-ca/editorconfig-core-go/pkg/output"
)

var (
	confFilenameFlag string
	versionPinFlag   string
	formatFlag       string
)

var rootCmd = &cobra.Command{
	Use:           "editorconfig [flags] <filename> [filename...]",
	Short:         "Resolve EditorConfig properties for one or more files",
	Long:          "editorconfig walks each file's ancestor directories, merges every matching .editorconfig section, and prints the resulting properties.",
	Version:       fmt.Sprintf("%d.%d.%d", econfig.Version[0], econfig.Version[1], econfig.Version[2]),
	Args:          cobra.MinimumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().StringVarP(&confFilenameFlag, "conf-filename", "f", econfig.DefaultConfFilename, "configuration file name to search for")
	rootCmd.Flags().StringVarP(&versionPinFlag, "version-pin", "b", "", "pin the reported version, as major.minor.patch")
	rootCmd.Flags().StringVarP(&formatFlag, "format", "o", "default", "output format: default, tabular, json")
	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().BoolP("version", "v", false, "version for editorconfig")
}

func run(cmd *cobra.Command, args []string) error {
	opts := []econfig.Option{econfig.WithConfFilename(confFilenameFlag)}

	if versionPinFlag != "" {
		major, minor, patch, err := parseVersion(versionPinFlag)
		if err != nil {
			return exitError{msg: err.Error()}
		}
		opts = append(opts, econfig.WithVersion(major, minor, patch))
	}

	results := make([]output.Result, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return exitError{msg: err.Error()}
		}

		props, err := econfig.Resolve(abs, opts...)
		if err != nil {
			return exitError{msg: describeError(err)}
		}

		results = append(results, output.Result{Path: arg, Properties: props})
	}

	formatter := output.NewFormatter(output.Format(formatFlag))
	formatter.Print(cmd.OutOrStdout(), results)
	return nil
}

func parseVersion(s string) (int, int, int, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid version %q: want major.minor.patch", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid version %q: %w", s, err)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// describeError renders one of econfig's four error kinds for a
// terminal. The type itself already carries enough context, so every
// kind, like any other error, is rendered as its own Error() text.
func describeError(err error) string {
	switch e := err.(type) {
	case *econfig.PathError:
		return e.Error()
	case *econfig.VersionError:
		return e.Error()
	case *econfig.ParseError:
		return e.Error()
	case *econfig.InvalidValueError:
		return e.Error()
	default:
		return err.Error()
	}
}

// exitError carries the message of an error met while running the
// command. main exits with code 2 for it, as for every other error that
// rootCmd.Execute returns.
type exitError struct{ msg string }

func (e exitError) Error() string { return e.msg }

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "editorconfig: %v\n", err)
		os.Exit(2)
	}
}
