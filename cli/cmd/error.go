package cmd

import "github.com/ardnew/dotenvgen/dotenv"

// Predefined errors (sentinel values).
var (
	ErrReadSource  = dotenv.NewError("read source")
	ErrWriteOutput = dotenv.NewError("write output")
	ErrWriteConfig = dotenv.NewError("write configuration")
	ErrFileExists  = dotenv.NewError("file exists")
	ErrMarshal     = dotenv.NewError("marshal entries")
	ErrCheck       = dotenv.NewError("check failed")
)
