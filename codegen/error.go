package codegen

import "github.com/ardnew/dotenvgen/dotenv"

var (
	ErrReservedName = dotenv.NewError("name is reserved in Go")
	ErrPackageName  = dotenv.NewError("invalid package name")
	ErrConstName    = dotenv.NewError("invalid constant name")
	ErrVisibility   = dotenv.NewError("unknown visibility")
	ErrFormat       = dotenv.NewError("generated source does not format")
	ErrWrite        = dotenv.NewError("write generated source")
)
