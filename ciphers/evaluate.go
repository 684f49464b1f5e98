package ciphers

import (
	"context"
	"fmt"

	"github.com/reusee/caesar/caesarlang"
)

type Direction string

const (
	DirectionEncode Direction = "encode"
	DirectionDecode Direction = "decode"
)

type Result struct {
	Statement caesarlang.Statement
	Direction Direction
	Input     string
	// Shift is the normalized amount actually applied
	Shift  int
	Output string
}

// Evaluate applies every encode and decode statement of program in order.
// Shift declarations produce no result of their own.
func Evaluate(ctx context.Context, program *caesarlang.Program) ([]Result, error) {
	var results []Result
	for _, stmt := range program.Statements {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		switch stmt := stmt.(type) {
		case *caesarlang.ShiftDecl:
		case *caesarlang.EncodeStmt:
			results = append(results, Result{
				Statement: stmt,
				Direction: DirectionEncode,
				Input:     stmt.Text,
				Shift:     Normalize(stmt.Shift),
				Output:    Encode(stmt.Text, stmt.Shift),
			})
		case *caesarlang.DecodeStmt:
			results = append(results, Result{
				Statement: stmt,
				Direction: DirectionDecode,
				Input:     stmt.Text,
				Shift:     Normalize(stmt.Shift),
				Output:    Decode(stmt.Text, stmt.Shift),
			})
		default:
			return results, fmt.Errorf("unknown statement %T", stmt)
		}
	}
	return results, nil
}
