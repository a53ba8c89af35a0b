package framer

import (
	"go/token"
	"reflect"

	"github.com/zoobzio/sentinel"
)

// scanShape validates that T can be carried for the given target and
// returns its type name. Struct types are walked field by field using
// sentinel metadata.
func scanShape[T any](target Target) (string, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return rt.String(), checkType(rt, target, "", map[reflect.Type]bool{})
	}

	spec := sentinel.Scan[T]()
	if !describes(spec, rt) {
		spec = reflectMetadata(rt)
	}
	seen := map[reflect.Type]bool{rt: true}
	if err := checkFields(spec, target, "", seen); err != nil {
		return "", err
	}
	if spec.TypeName == "" {
		return rt.String(), nil
	}
	return spec.TypeName, nil
}

// checkFields validates each exported field of a struct. Codec tags are
// not consulted: the framer cannot know which tag its codec reads.
func checkFields(spec sentinel.Metadata, target Target, prefix string, seen map[reflect.Type]bool) error {
	for _, field := range spec.Fields {
		if !token.IsExported(field.Name) {
			continue
		}

		name := field.Name
		if prefix != "" {
			name = prefix + "." + field.Name
		}

		if field.Kind == sentinel.KindInterface {
			return newConfigError(ErrUnsupportedType, field.Type, name)
		}
		if err := checkType(field.ReflectType, target, name, seen); err != nil {
			return err
		}
	}
	return nil
}

// checkType rejects kinds no payload codec can round-trip, and for fixed
// shape targets any kind whose encoded size depends on runtime contents.
func checkType(rt reflect.Type, target Target, path string, seen map[reflect.Type]bool) error {
	switch rt.Kind() {
	case reflect.Interface, reflect.Chan, reflect.Func,
		reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return newConfigError(ErrUnsupportedType, rt.String(), path)

	case reflect.Pointer, reflect.Slice, reflect.Map:
		if target.fixedShape() {
			return newConfigError(ErrUnsupportedType, rt.String(), path)
		}
		if rt.Kind() == reflect.Map {
			if err := checkType(rt.Key(), target, path, seen); err != nil {
				return err
			}
		}
		return checkType(rt.Elem(), target, path, seen)

	case reflect.Array:
		return checkType(rt.Elem(), target, path, seen)

	case reflect.Struct:
		if seen[rt] {
			return nil
		}
		seen[rt] = true
		spec := scanNestedType(rt)
		return checkFields(spec, target, path, seen)
	}
	return nil
}

// scanNestedType returns sentinel metadata for a nested struct type,
// building it from reflection when sentinel has not seen the type.
func scanNestedType(rt reflect.Type) sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.Name()); ok && describes(spec, rt) {
		return spec
	}
	return reflectMetadata(rt)
}

// describes reports whether spec was extracted from rt. sentinel caches by
// bare type name, so same-named types from other packages or function
// scopes, and anonymous structs, can share an entry.
func describes(spec sentinel.Metadata, rt reflect.Type) bool {
	if rt.Name() == "" || spec.TypeName != rt.Name() || spec.PackageName != rt.PkgPath() {
		return false
	}
	exported := 0
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).IsExported() {
			exported++
		}
	}
	if exported != len(spec.Fields) {
		return false
	}
	for _, field := range spec.Fields {
		if len(field.Index) != 1 || field.Index[0] >= rt.NumField() {
			return false
		}
		if sf := rt.Field(field.Index[0]); sf.Name != field.Name || sf.Type != field.ReflectType {
			return false
		}
	}
	return true
}

// reflectMetadata builds sentinel-shaped metadata for rt from reflection.
func reflectMetadata(rt reflect.Type) sentinel.Metadata {
	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return spec
}
