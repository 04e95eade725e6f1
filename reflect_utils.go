package jens

import (
	"reflect"
	"strings"

	"github.com/reoring/jens/internal/model"
)

var (
	enumerableType = reflect.TypeFor[Enumerable]()
	itemType       = reflect.TypeFor[Item]()
)

// qualifiedName returns "<import path>.<Name>" for named types and the Go
// syntax of unnamed ones.
func qualifiedName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Name() == "" {
		return t.String()
	}
	return model.Qualify(t.PkgPath(), t.Name())
}

// ownMethods returns the methods of the interface t that none of embeds
// provides, in reflect's (name) order.
func ownMethods(t reflect.Type, embeds []reflect.Type) []model.Method {
	inherited := map[string]struct{}{}
	for _, e := range embeds {
		for i := 0; i < e.NumMethod(); i++ {
			inherited[e.Method(i).Name] = struct{}{}
		}
	}
	var out []model.Method
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if _, ok := inherited[m.Name]; ok {
			continue
		}
		out = append(out, methodOf(m))
	}
	return out
}

func methodOf(m reflect.Method) model.Method {
	mt := m.Type
	return model.Method{
		Name:        m.Name,
		NumIn:       mt.NumIn(),
		NumOut:      mt.NumOut(),
		ReturnsItem: mt.NumOut() == 1 && itemType.AssignableTo(mt.Out(0)),
		Signature:   m.Name + strings.TrimPrefix(mt.String(), "func"),
	}
}
