package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Encode   bool
	Validate bool
	Merge    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("OMI_DEBUG_PARSE")
	d.Encode = boolEnv("OMI_DEBUG_ENCODE")
	d.Validate = boolEnv("OMI_DEBUG_VALIDATE")
	d.Merge = boolEnv("OMI_DEBUG_MERGE")
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
func Encode() bool {
	return d.Encode
}
func Validate() bool {
	return d.Validate
}
func Merge() bool {
	return d.Merge
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
