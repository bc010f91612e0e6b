package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Patch  bool
	Select bool
	Gomap  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("CONF_DEBUG_PARSE")
	d.Patch = boolEnv("CONF_DEBUG_PATCH")
	d.Select = boolEnv("CONF_DEBUG_SELECT")
	d.Gomap = boolEnv("CONF_DEBUG_GOMAP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Select() bool {
	return d.Select
}
func Gomap() bool {
	return d.Gomap
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
