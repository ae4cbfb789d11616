/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ParamsCmd prints the benchmark description in effect
var ParamsCmd = &cobra.Command{
	Use:   "params",
	Short: "Print the benchmark parameters, or an example benchmark file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("benchmark")
		bp, err := LoadBenchmark(file)
		if err != nil {
			return err
		}
		if example, _ := cmd.Flags().GetBool("example"); example {
			data, err := bp.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s", data)
			return nil
		}
		if err = bp.Validate(); err != nil {
			return err
		}
		bp.Print()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ParamsCmd)
	ParamsCmd.Flags().StringP("benchmark", "B", "", "YAML benchmark description")
	ParamsCmd.Flags().Bool("example", false, "print the parameters as a YAML benchmark file")
}
