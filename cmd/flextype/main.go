// Package main provides the CLI entrypoint for flextype.
//
// flextype wraps loosely-typed values, infers their runtime kind and
// coerces stringly-typed input into richer representations. The CLI
// exposes the same pipeline over command-line arguments and YAML
// variable files for quick inspection.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mxher07/flextype"
	"github.com/Mxher07/flextype/options"
)

func main() {
	var stringLock, boolLock, typeLock, dump bool

	root := &cobra.Command{
		Use:           "flextype",
		Short:         "Inspect how flextype infers and coerces loosely-typed values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	inspect := &cobra.Command{
		Use:   "inspect <name=value>...",
		Short: "Wrap each name=value pair and print the inferred kind and coerced value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locks := lockMask(stringLock, boolLock, typeLock)

			for _, arg := range args {
				name, raw, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("argument %q is not a name=value pair", arg)
				}

				v, err := flextype.New(name, raw, locks)
				if err != nil {
					return err
				}

				report(cmd, v, dump)
			}

			return nil
		},
	}
	inspect.Flags().BoolVar(&stringLock, "string-lock", false, "keep string values verbatim")
	inspect.Flags().BoolVar(&boolLock, "bool-lock", false, "store booleans as 1/0")
	inspect.Flags().BoolVar(&typeLock, "type-lock", false, "skip coercion entirely")
	inspect.Flags().BoolVar(&dump, "dump", false, "print full spew snapshots")

	var file string
	batch := &cobra.Command{
		Use:   "batch -f <vars.yaml>",
		Short: "Wrap every variable of a YAML mapping file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locks := lockMask(stringLock, boolLock, typeLock)

			vars, err := flextype.LoadYAMLFile(file, locks)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(vars))
			for name := range vars {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				report(cmd, vars[name], dump)
			}

			return nil
		},
	}
	batch.Flags().StringVarP(&file, "file", "f", "", "path to the YAML variables file (required)")
	batch.Flags().BoolVar(&stringLock, "string-lock", false, "keep string values verbatim")
	batch.Flags().BoolVar(&boolLock, "bool-lock", false, "store booleans as 1/0")
	batch.Flags().BoolVar(&typeLock, "type-lock", false, "skip coercion entirely")
	batch.Flags().BoolVar(&dump, "dump", false, "print full spew snapshots")
	batch.MarkFlagRequired("file")

	root.AddCommand(inspect, batch)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "flextype:", err)
		os.Exit(1)
	}
}

func lockMask(stringLock, boolLock, typeLock bool) options.LockEnum {
	locks := options.LockEnum(options.LockNone)
	if stringLock {
		locks = locks.With(options.LockString)
	}
	if boolLock {
		locks = locks.With(options.LockBool)
	}
	if typeLock {
		locks = locks.With(options.LockType)
	}

	return locks
}

func report(cmd *cobra.Command, v *flextype.Value, dump bool) {
	if dump {
		cmd.Print(v.Debug().Dump())
		return
	}

	history := v.TypeHistory()
	tags := make([]string, len(history))
	for i, k := range history {
		tags[i] = k.Tag()
	}

	cmd.Printf("%s: %s = %v (history: %s, locks: %s)\n",
		v.Name(), v.Type().Tag(), v.Value(), strings.Join(tags, " -> "), v.Locks())
}
