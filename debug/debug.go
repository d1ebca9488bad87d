package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Walk  bool
	Parse bool
	Order bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("EXPLODESH_DEBUG_WALK")
	d.Parse = boolEnv("EXPLODESH_DEBUG_PARSE")
	d.Order = boolEnv("EXPLODESH_DEBUG_ORDER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Parse() bool {
	return d.Parse
}
func Order() bool {
	return d.Order
}
