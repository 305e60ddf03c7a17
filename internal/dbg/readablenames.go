package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for triangle keys, used by Triangle.DbgName and the canvas
// triangle labels. Coordinates are unreadable at a glance, and the mesh is
// rebuilt on every edit, so a triangle is named after its sorted vertices and
// keeps its name across rebuilds for as long as it survives.
//
// Names are handed out lazily, in order of demand, and never freed.

type Namer struct {
	names map[interface{}]string
	taken map[string]bool
}

func NewNamer() *Namer {
	return &Namer{
		names: make(map[interface{}]string),
		taken: make(map[string]bool),
	}
}

// Name key, which must be comparable. Two keys never share a name.
func (n *Namer) Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(key); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	if name, ok := n.names[key]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	for suffix := 2; n.taken[name]; suffix++ {
		name = fmt.Sprintf("%s%s%d", strings.Title(petname.Adjective()), strings.Title(petname.Name()), suffix)
	}
	n.names[key] = name
	n.taken[name] = true
	return name
}

var triangleNames *Namer

func init() {
	triangleNames = NewNamer()
	// Names depend on the order they were asked for, so make them differ between
	// runs as a reminder not to compare them across runs.
	petname.NonDeterministicMode()
}

func Name(key interface{}) string {
	return triangleNames.Name(key)
}
