package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Construction batches, contexts and the like only have a pointer identity.
// Pointer strings are unreadable in a trace, so this hands out memorable
// names instead. Names are generated lazily and never forgotten, which is fine
// as long as it is only used for tracing.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// Names are handed out in order of demand, so they are made
	// nondeterministic to remind the reader that the same name does not refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if v.IsNil() {
			return "Ø"
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Fresh returns a new name that is not tied to any object, e.g. for naming an
// output file nobody asked a name for.
func Fresh() string {
	return petname.Generate(2, "-")
}
