// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package symbols

import (
	"go/types"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/containerinit/internal/model"
)

// typeRef converts t into a [model.TypeRef], dereferencing pointers.
// Unnamed composite types result in an empty reference.
func typeRef(t types.Type, constructors bool) model.TypeRef {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	switch t := t.(type) {
	case *types.Named:
		obj := t.Obj()

		ref := model.TypeRef{Name: obj.Name()}
		if pkg := obj.Pkg(); pkg != nil {
			ref.Path = pkg.Path()
		}

		if constructors {
			ref.Constructors = constructorsOf(t)
		}

		return ref

	case *types.Basic:
		return model.TypeRef{Name: t.Name()}

	case *types.TypeParam:
		return model.TypeRef{Name: t.Obj().Name()}

	default:
		return model.TypeRef{}
	}
}

// constructorsOf returns the signatures of the NewT and newT functions in the package of t.
func constructorsOf(t *types.Named) []model.Signature {
	obj := t.Obj()

	pkg := obj.Pkg()
	if pkg == nil {
		return nil // predeclared
	}

	var ctors []model.Signature

	for _, name := range constructorNames(obj.Name()) {
		fn, ok := pkg.Scope().Lookup(name).(*types.Func)
		if !ok {
			continue
		}

		sig := fn.Signature()
		if !constructs(sig, obj) {
			continue
		}

		params := sig.Params()
		ctor := model.Signature{Name: name, Params: make([]model.TypeRef, 0, params.Len())}

		for i := range params.Len() {
			ctor.Params = append(ctor.Params, typeRef(params.At(i).Type(), false))
		}

		ctors = append(ctors, ctor)
	}

	return ctors
}

// constructs reports whether the first result of sig is obj's type or a pointer to it.
func constructs(sig *types.Signature, obj *types.TypeName) bool {
	if sig.Recv() != nil || sig.Results().Len() == 0 {
		return false
	}

	named := namedOf(sig.Results().At(0).Type())

	return named != nil && named.Obj() == obj
}

// constructorNames returns the conventional constructor names for a type name.
func constructorNames(name string) [2]string {
	r, size := utf8.DecodeRuneInString(name)
	title := string(unicode.ToUpper(r)) + name[size:]

	return [2]string{"New" + title, "new" + title}
}
