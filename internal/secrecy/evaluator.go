package secrecy

import (
	"secrecy/internal/ast"
	"secrecy/internal/errors"
	"secrecy/internal/lattice"
)

// Eval computes level(e) for any expression, per the table in spec.md
// §4.4. Every rule ends with a final join against the current PC, so the
// returned level is never below it (spec.md §8 invariant 1).
func Eval(ctx *CheckingContext, expr ast.Expr) lattice.Label {
	level := ctx.Lattice.Join(evalBare(ctx, expr), ctx.pc())
	ast.UpdateAnalysisInfo(expr, string(level), string(ctx.pc()))
	return level
}

// evalBare computes level(e) before the final PC join, so callers that
// need the pre-join level (none currently do, but keeping the split
// mirrors the table's structure) aren't forced to re-derive it.
func evalBare(ctx *CheckingContext, expr ast.Expr) lattice.Label {
	switch e := expr.(type) {
	case *ast.BinaryExpr:
		return ctx.Lattice.Join(evalBare(ctx, e.Left), evalBare(ctx, e.Right))

	case *ast.UnaryExpr:
		return evalBare(ctx, e.Value)

	case *ast.IdentExpr:
		return lookupIdent(ctx, e.Name)

	case *ast.FieldAccessExpr:
		return lookupFieldAccess(ctx, e)

	case *ast.CallExpr:
		return evalCall(ctx, e)

	case *ast.GetExpr:
		// "get f" releases the await frame matching f's origin, then
		// evaluates to ⊥ joined with the *updated* stack (spec.md §4.4).
		ctx.PC.PopOrigin(e.Future.Value)
		return ctx.Lattice.Min()

	case *ast.ParenExpr:
		return evalBare(ctx, e.Value)

	case *ast.LiteralExpr:
		return ctx.Lattice.Min()

	case *ast.BadExpr:
		return ctx.Lattice.Min()

	default:
		return ctx.Lattice.Min()
	}
}

// lookupIdent resolves a bare identifier: a local variable or parameter
// first, then an implicit field of the enclosing class (spec.md §4.4
// "Variable/field use").
func lookupIdent(ctx *CheckingContext, name string) lattice.Label {
	if ctx.CurrentClass == nil {
		return ctx.Scope.LookupOr(name, ctx.Lattice.Min())
	}
	fieldLabel, isField := ctx.CurrentClass.Fields[name]
	if !isField {
		return ctx.Scope.LookupOr(name, ctx.Lattice.Min())
	}
	if scoped, ok := ctx.Scope.Lookup(name); ok {
		return scoped
	}
	return fieldLabel
}

// lookupFieldAccess resolves "recv.field". Only "this.field" and other
// receiver expressions whose static class is known are resolved against
// that class's field table; anything else defaults to ⊥, matching the
// "default label" rule for declarations the checker can't see (spec.md
// §8 invariant 4).
func lookupFieldAccess(ctx *CheckingContext, e *ast.FieldAccessExpr) lattice.Label {
	class := resolveReceiverClass(ctx, e.Target)
	if class == nil {
		return ctx.Lattice.Min()
	}
	if label, ok := class.Fields[e.Field]; ok {
		return label
	}
	return ctx.Lattice.Min()
}

// resolveReceiverType finds the declared static type name of a call or
// field access receiver: "this" resolves to the current class's own
// name; a local or parameter resolves via the Symbol Table's type
// tracking; a bare identifier that is neither resolves as an implicit
// field of the enclosing class, the same fallback lookupIdent uses for
// labels (spec.md §4.4 "Variable/field use"); "recv.field" resolves
// recv's class first and looks the field's type up there, so a chain
// like "this.o!m()" resolves the same as a bare "o!m()" would.
func resolveReceiverType(ctx *CheckingContext, receiver ast.Expr) (string, bool) {
	switch r := receiver.(type) {
	case *ast.IdentExpr:
		if r.Name == "this" {
			if ctx.CurrentClass == nil {
				return "", false
			}
			return ctx.CurrentClass.Name, true
		}
		if typ, ok := ctx.Scope.LookupType(r.Name); ok {
			return typ, true
		}
		if ctx.CurrentClass != nil {
			if typ, ok := ctx.CurrentClass.FieldTypes[r.Name]; ok {
				return typ, true
			}
		}
		return "", false

	case *ast.FieldAccessExpr:
		class := resolveReceiverClass(ctx, r.Target)
		if class == nil {
			return "", false
		}
		typ, ok := class.FieldTypes[r.Field]
		return typ, ok

	default:
		return "", false
	}
}

// resolveReceiverClass looks up the static class of a call or field
// access receiver.
func resolveReceiverClass(ctx *CheckingContext, receiver ast.Expr) *ClassInfo {
	typ, ok := resolveReceiverType(ctx, receiver)
	if !ok {
		return nil
	}
	return ctx.Decls.Classes[typ]
}

// resolveReceiverMethod looks up the declared MethodInfo for a call's
// receiver and method name, checking the receiver's class first and
// falling back to an interface of the same name (covers calls through an
// interface-typed variable or field).
func resolveReceiverMethod(ctx *CheckingContext, receiver ast.Expr, method string) (MethodInfo, bool) {
	typ, ok := resolveReceiverType(ctx, receiver)
	if !ok {
		return MethodInfo{}, false
	}

	if class, ok := ctx.Decls.Classes[typ]; ok {
		if m, ok := class.Methods[method]; ok {
			return m, true
		}
	}
	if iface, ok := ctx.Decls.Interfaces[typ]; ok {
		if m, ok := iface.Methods[method]; ok {
			return m, true
		}
	}
	return MethodInfo{}, false
}

// evalCall implements spec.md §4.4's call rules: synchronous and
// asynchronous calls are evaluated identically. Each argument's level
// must be ⊑ the declared parameter label, else ParameterTooHigh is
// emitted; the result is the declared return label joined with the
// current PC.
func evalCall(ctx *CheckingContext, call *ast.CallExpr) lattice.Label {
	method, found := resolveReceiverMethod(ctx, call.Receiver, call.Method.Value)

	for i, arg := range call.Args {
		argLevel := Eval(ctx, arg)
		if !found || i >= len(method.Params) {
			continue
		}
		declared := method.Params[i].Label
		if !ctx.Lattice.Leq(argLevel, declared) {
			ctx.report(errors.ParameterTooHigh(string(argLevel), string(declared), call.Pos))
		}
	}

	if !found {
		return ctx.Lattice.Min()
	}
	return method.ReturnLabel
}
