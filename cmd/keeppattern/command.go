// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xmidt-org/keeppattern"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "keeppattern",
		Short:        "Compile ProGuard keep rule wildcards into regular expressions.",
		SilenceUsage: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "member <spec>",
			Short: "Compile a field or method name wildcard.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), keeppattern.CompileMemberPattern(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "type <spec>",
			Short: "Compile a binary type descriptor wildcard.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), keeppattern.CompileTypePattern(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "normalize <type name>",
			Short: "Convert a Java type name with wildcards into a wildcard descriptor.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				desc, err := keeppattern.NormalizeWildcardDescriptor(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), desc)
				return nil
			},
		},
		&cobra.Command{
			Use:   "special <spec>",
			Short: "Report whether a specification needs a regular expression.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), keeppattern.HasSpecialChar(args[0]))
				return nil
			},
		},
		newMatchCommand(),
	)

	return root
}

func newMatchCommand() *cobra.Command {
	var (
		rulesPath string
		class     string
		field     string
		method    string
	)

	cmd := &cobra.Command{
		Use:   "match --rules <file> --class <descriptor> [--field name:type | --method name:prototype]",
		Short: "Report whether keep rules retain a class, field or method.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if field != "" && method != "" {
				return errors.New("--field and --method are mutually exclusive")
			}

			rules, err := keeppattern.LoadRules(rulesPath)
			if err != nil {
				return err
			}

			keeper := &keeppattern.Keeper{}
			if err := keeper.UpdateRules(rules); err != nil {
				return err
			}

			var kept bool
			switch {
			case field != "":
				name, desc, err := splitMember(field)
				if err != nil {
					return err
				}
				kept = keeper.KeepsField(class, name, desc)
			case method != "":
				name, desc, err := splitMember(method)
				if err != nil {
					return err
				}
				kept = keeper.KeepsMethod(class, name, desc)
			default:
				kept = keeper.KeepsClass(class)
			}

			fmt.Fprintln(cmd.OutOrStdout(), kept)
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML file with keep rules")
	cmd.Flags().StringVar(&class, "class", "", "class descriptor, e.g. Lcom/example/Foo;")
	cmd.Flags().StringVar(&field, "field", "", "field as name:descriptor, e.g. count:I")
	cmd.Flags().StringVar(&method, "method", "", "method as name:prototype, e.g. run:()V")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("class")

	return cmd
}

// splitMember splits "name:descriptor".
func splitMember(s string) (string, string, error) {
	name, desc, ok := strings.Cut(s, ":")
	if !ok || name == "" || desc == "" {
		return "", "", fmt.Errorf("member %q must be in the form name:descriptor", s)
	}
	return name, desc, nil
}
