package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Clone    bool
	Equal    bool
	Merge    bool
	Register bool
	CLI      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Clone = boolEnv("DEEP_DEBUG_CLONE")
	d.Equal = boolEnv("DEEP_DEBUG_EQUAL")
	d.Merge = boolEnv("DEEP_DEBUG_MERGE")
	d.Register = boolEnv("DEEP_DEBUG_REGISTER")
	d.CLI = boolEnv("DEEP_DEBUG_CLI")
	if boolEnv("DEEP_DEBUG") {
		*d = debug{Clone: true, Equal: true, Merge: true, Register: true, CLI: true}
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Clone() bool {
	return d.Clone
}
func Equal() bool {
	return d.Equal
}
func Merge() bool {
	return d.Merge
}
func Register() bool {
	return d.Register
}
func CLI() bool {
	return d.CLI
}
