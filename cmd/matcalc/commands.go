package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowmat/matrix"
)

type (
	binaryOp func(a, b *matrix.Matrix) (*matrix.Matrix, error)
	scalarOp func(m *matrix.Matrix, d float64) (*matrix.Matrix, error)
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "print a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), m)
		},
	}
}

func (a *app) binaryCmd(name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [file] [file]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := loadAll(cmd, args)
			if err != nil {
				return err
			}
			res, err := op(ms[0], ms[1])
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) scalarCmd(name, short string, op scalarOp) *cobra.Command {
	var by float64
	cmd := &cobra.Command{
		Use:   name + " [file]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := op(m, by)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Float64Var(&by, "by", 0, "scalar operand")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func (a *app) transposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose [file]",
		Short: "transpose a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := matrix.Transpose(m)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) equalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal [file] [file]",
		Short: "report whether two matrices are equal within --eps",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := loadAll(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), matrix.Equal(ms[0], ms[1], a.cfg.Options()...))
			return err
		},
	}
}
