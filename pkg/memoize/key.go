package memoize

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// KeyFunc derives a cache key from the wrapped function's name and the
// arguments of one invocation. Equal arguments must derive equal keys;
// distinct arguments should derive distinct keys.
type KeyFunc func(name string, args []any) string

// DefaultKey renders the function name followed by each argument as
// type(value), "/"-separated. %#v alone renders int(1) and int64(1)
// identically, so the type is prepended explicitly to keep such
// invocations on distinct keys.
func DefaultKey(name string, args []any) string {
	if len(args) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	for _, a := range args {
		fmt.Fprintf(&b, "/%T(%#v)", a, a)
	}
	return b.String()
}

// funcName resolves fn's symbol name via the runtime, trimming the package
// path down to the last element so keys stay short but unambiguous within
// a process.
func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
