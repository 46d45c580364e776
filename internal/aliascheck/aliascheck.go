// Package aliascheck reports calls that pass a slice together with the
// address of one of its own elements.
//
// A callee that writes through the slice and reads through the pointer
// sees the pointer's value change under it:
//
//	scale(v, &v[0])
//	scale(a[:], &a[0])
//	v.scale(&v[0])
//
// Copy the element into a local first, or take it by value.
//
// A resliced argument s[lo:hi] only hides elements below lo, or at and past
// a constant max in s[lo:hi:max]. Elements between hi and cap(s) stay
// reachable because the callee can append into them.
package aliascheck

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
)

const Doc = `check for arguments that alias a slice passed to the same call

Reports f(s, &s[i]), f(s[a:b], &s[i]), f(arr[:], &arr[i]) and s.m(&s[i]).
The callee can change s[i] while it still reads the value through the
pointer. Constant indices outside the reachable part of a reslice are
not reported.`

var Analyzer = &analysis.Analyzer{
	Name:     "aliascheck",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// window is the part of a backing array a callee can write through one
// slice argument. max < 0 means up to the capacity.
type window struct {
	lo, max int64
}

func (w window) covers(i int64) bool {
	return i >= w.lo && (w.max < 0 || i < w.max)
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if len(call.Args) == 0 {
			return
		}

		passed := make(map[string][]window)
		record := func(e ast.Expr) {
			if name, w, ok := sliceArg(pass.TypesInfo, e); ok {
				passed[name] = append(passed[name], w)
			}
		}
		if sel, ok := astutil.Unparen(call.Fun).(*ast.SelectorExpr); ok {
			if s, ok := pass.TypesInfo.Selections[sel]; ok && s.Kind() == types.MethodVal {
				record(sel.X)
			}
		}
		for _, arg := range call.Args {
			record(arg)
		}
		if len(passed) == 0 {
			return
		}

		for _, arg := range call.Args {
			addr, ok := astutil.Unparen(arg).(*ast.UnaryExpr)
			if !ok || addr.Op != token.AND {
				continue
			}
			index, ok := astutil.Unparen(addr.X).(*ast.IndexExpr)
			if !ok || !indexable(pass.TypesInfo.TypeOf(index.X)) || !pure(index.X) {
				continue
			}
			name := types.ExprString(astutil.Unparen(index.X))
			windows, ok := passed[name]
			if !ok {
				continue
			}
			if i, ok := constInt(pass.TypesInfo, index.Index); ok && !anyCovers(windows, i) {
				continue
			}
			pass.Reportf(addr.Pos(), "argument %s aliases slice %s passed to the same call",
				types.ExprString(addr), name)
		}
	})
	return nil, nil
}

// sliceArg returns the storage a slice argument refers to: x for x and
// x[a:b], where x may also be an array or a pointer to one when resliced.
func sliceArg(info *types.Info, e ast.Expr) (string, window, bool) {
	e = astutil.Unparen(e)
	w := window{0, -1}
	if s, ok := e.(*ast.SliceExpr); ok {
		if lo, ok := constInt(info, s.Low); ok {
			w.lo = lo
		}
		if hi, ok := constInt(info, s.Max); ok && s.Slice3 {
			w.max = hi
		}
		base := astutil.Unparen(s.X)
		if !indexable(info.TypeOf(base)) || !pure(base) {
			return "", w, false
		}
		return types.ExprString(base), w, true
	}
	if !isSlice(info.TypeOf(e)) || !pure(e) {
		return "", w, false
	}
	return types.ExprString(e), w, true
}

func anyCovers(ws []window, i int64) bool {
	for _, w := range ws {
		if w.covers(i) {
			return true
		}
	}
	return false
}

func constInt(info *types.Info, e ast.Expr) (int64, bool) {
	if e == nil {
		return 0, false
	}
	tv, ok := info.Types[e]
	if !ok || tv.Value == nil {
		return 0, false
	}
	return constant.Int64Val(constant.ToInt(tv.Value))
}

func isSlice(t types.Type) bool {
	if t == nil {
		return false
	}
	_, ok := t.Underlying().(*types.Slice)
	return ok
}

// indexable reports whether &x[i] on a value of type t points into memory
// shared with x[:].
func indexable(t types.Type) bool {
	if t == nil {
		return false
	}
	switch u := t.Underlying().(type) {
	case *types.Slice, *types.Array:
		return true
	case *types.Pointer:
		_, ok := u.Elem().Underlying().(*types.Array)
		return ok
	}
	return false
}

// pure reports whether e names the same storage each time it is evaluated.
// Calls never do.
func pure(e ast.Expr) bool {
	switch e := astutil.Unparen(e).(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		return pure(e.X)
	case *ast.StarExpr:
		return pure(e.X)
	case *ast.IndexExpr:
		return pure(e.X) && pure(e.Index)
	case *ast.BasicLit:
		return true
	}
	return false
}
