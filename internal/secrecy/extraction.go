package secrecy

import (
	"secrecy/internal/ast"
	"secrecy/internal/errors"
	"secrecy/internal/lattice"
)

// Extract runs the Extraction Pass (spec.md §4.2): it walks every class
// and interface declaration in the Model, populates the Symbol Table of
// field, parameter, and method-signature labels, validates every
// annotation's label against the lattice, and checks override
// compatibility between class methods and the interface methods they
// implement.
func Extract(model *ast.Model, lat *lattice.Lattice, sink *diagSink) *Declarations {
	decls := newDeclarations()

	for _, unit := range model.Units {
		for _, mod := range unit.Modules {
			for _, iface := range mod.Interfaces {
				decls.Interfaces[iface.Name.Value] = extractInterface(iface, lat, sink)
			}
		}
	}

	for _, unit := range model.Units {
		for _, mod := range unit.Modules {
			for _, cls := range mod.Classes {
				decls.Classes[cls.Name.Value] = extractClass(cls, lat, sink)
			}
		}
	}

	for _, unit := range model.Units {
		for _, mod := range unit.Modules {
			for _, cls := range mod.Classes {
				checkOverrides(cls, decls, lat, sink)
			}
		}
	}

	return decls
}

func extractInterface(iface *ast.InterfaceDecl, lat *lattice.Lattice, sink *diagSink) *InterfaceInfo {
	info := &InterfaceInfo{Name: iface.Name.Value, Methods: make(map[string]MethodInfo)}
	for _, sig := range iface.Methods {
		info.Methods[sig.Name.Value] = MethodInfo{
			Name:        sig.Name.Value,
			ReturnType:  typeString(sig.Return),
			ReturnLabel: annotationLabel(sig.Annotation, lat, sink),
			Params:      extractParams(sig.Params, lat, sink),
		}
	}
	return info
}

func extractClass(cls *ast.ClassDecl, lat *lattice.Lattice, sink *diagSink) *ClassInfo {
	info := &ClassInfo{
		Name:       cls.Name.Value,
		Fields:     make(map[string]lattice.Label),
		FieldTypes: make(map[string]string),
		Methods:    make(map[string]MethodInfo),
	}

	for _, item := range cls.Items {
		switch decl := item.(type) {
		case *ast.FieldDecl:
			info.Fields[decl.Name.Value] = annotationLabel(decl.Annotation, lat, sink)
			info.FieldTypes[decl.Name.Value] = typeString(decl.Type)
		case *ast.MethodDecl:
			info.Methods[decl.Name.Value] = MethodInfo{
				Name:        decl.Name.Value,
				ReturnType:  typeString(decl.Return),
				ReturnLabel: annotationLabel(decl.Annotation, lat, sink),
				Params:      extractParams(decl.Params, lat, sink),
			}
		}
	}

	return info
}

func extractParams(params []*ast.Param, lat *lattice.Lattice, sink *diagSink) []ParamInfo {
	out := make([]ParamInfo, len(params))
	for i, p := range params {
		out[i] = ParamInfo{
			Name:  p.Name.Value,
			Type:  typeString(p.Type),
			Label: annotationLabel(p.Annotation, lat, sink),
		}
	}
	return out
}

// annotationLabel resolves an (optional) annotation to its label,
// reporting WrongAnnotationValue and defaulting to ⊥ if the labelled
// value is not among the lattice's declared labels (spec.md §4.2 step 2,
// §7, §8 invariant 3 "every label in the Symbol Table satisfies
// is_valid").
func annotationLabel(ann *ast.Annotation, lat *lattice.Lattice, sink *diagSink) lattice.Label {
	if ann == nil {
		return lat.Min()
	}

	label := lattice.Label(ann.Value.Value)
	if lat.IsValid(label) {
		return label
	}

	sink.report(errors.WrongAnnotationValue(ann.Value.Value, labelStrings(lat.Labels()), ann.Value.Pos))
	return lat.Min()
}

func labelStrings(labels []lattice.Label) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return out
}

// checkOverrides implements spec.md §4.2 step 4: for each class method
// that matches an implemented interface's method by name (and, per
// §4.6, the full structural shape), require the class side's label to
// be ⊑ the interface side's for the return and every paired parameter.
func checkOverrides(cls *ast.ClassDecl, decls *Declarations, lat *lattice.Lattice, sink *diagSink) {
	classInfo := decls.Classes[cls.Name.Value]
	if classInfo == nil {
		return
	}

	for _, implName := range cls.Implements {
		iface := decls.Interfaces[implName.Value]
		if iface == nil {
			continue
		}

		for _, ifaceMethod := range iface.Methods {
			classMethod, ok := classInfo.Methods[ifaceMethod.Name]
			if !ok || !signaturesMatch(classMethod, ifaceMethod) {
				continue
			}

			returnSite := overrideReturnSite(cls, ifaceMethod.Name)

			if !lat.Leq(classMethod.ReturnLabel, ifaceMethod.ReturnLabel) {
				sink.report(errors.LeakageAtMost(string(ifaceMethod.ReturnLabel), string(classMethod.ReturnLabel), returnSite))
			}

			for _, ifaceParam := range ifaceMethod.Params {
				for _, classParam := range classMethod.Params {
					if ifaceParam.Name != classParam.Name {
						continue
					}
					if !lat.Leq(classParam.Label, ifaceParam.Label) {
						sink.report(errors.LeakageAtMost(string(ifaceParam.Label), string(classParam.Label), returnSite))
					}
				}
			}
		}
	}
}

// overrideReturnSite finds the source position of a class method's
// return-type annotation, the anchor spec.md §7 specifies for
// LeakageAtMost diagnostics. Falls back to the position of the method's
// return type when there is no annotation to anchor on.
func overrideReturnSite(cls *ast.ClassDecl, methodName string) ast.Position {
	for _, item := range cls.Items {
		m, ok := item.(*ast.MethodDecl)
		if !ok || m.Name.Value != methodName {
			continue
		}
		if m.Annotation != nil {
			return m.Annotation.Pos
		}
		return m.Return.NodePos()
	}
	return ast.Position{}
}
