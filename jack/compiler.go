// This file is part of n2t - a Hack toolchain.
//
// Copyright 2026 The n2t Authors
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

package jack

import (
	"fmt"
	"io"

	"github.com/hackforge/n2t/internal/ngi"
)

var primitiveTypes = map[string]bool{"int": true, "char": true, "boolean": true}

var binaryOp = map[string]string{
	"+": "add", "-": "sub", "&": "and", "|": "or",
	"<": "lt", ">": "gt", "=": "eq",
}

// segmentOf maps a symbol's storage kind to the VM segment used to access
// it. Fields live in "this", everything else shares its Kind's name.
func segmentOf(k SymbolKind) string {
	if k == KindField {
		return "this"
	}
	return k.String()
}

// Compiler compiles a single Jack class. One Compiler handles one class;
// create a fresh one per source file.
type Compiler struct {
	file string
	lex  *Lexer
	cur  Token
	w    *ngi.ErrWriter

	className  string
	classTable *SymbolTable
	subTable   *SymbolTable

	subName   string
	subKind   string // "constructor", "function" or "method"
	labelSeq  int
}

// Compile reads one Jack class from r and writes its VM translation to w.
func Compile(file string, r io.Reader, w io.Writer) error {
	c := &Compiler{
		file: file,
		lex:  NewLexer(file, r),
		w:    ngi.NewErrWriter(w),
	}
	if err := c.advance(); err != nil {
		return err
	}
	if err := c.compileClass(); err != nil {
		return err
	}
	return c.w.Err
}

func (c *Compiler) advance() error {
	tok, err := c.lex.Next()
	if err != nil {
		return err
	}
	c.cur = tok
	return nil
}

func (c *Compiler) errorf(format string, args ...interface{}) error {
	return &ParseError{File: c.file, Line: c.cur.Line, Msg: fmt.Sprintf(format, args...)}
}

func (c *Compiler) expectKeyword(kw string) error {
	if c.cur.Kind != TokenKeyword || c.cur.Text != kw {
		return c.errorf("expected keyword %q, got %s %q", kw, c.cur.Kind, c.cur.Text)
	}
	return c.advance()
}

func (c *Compiler) expectSymbol(sym string) error {
	if c.cur.Kind != TokenSymbol || c.cur.Text != sym {
		return c.errorf("expected %q, got %s %q", sym, c.cur.Kind, c.cur.Text)
	}
	return c.advance()
}

func (c *Compiler) expectIdentifier() (string, error) {
	if c.cur.Kind != TokenIdentifier {
		return "", c.errorf("expected identifier, got %s %q", c.cur.Kind, c.cur.Text)
	}
	name := c.cur.Text
	return name, c.advance()
}

func (c *Compiler) isKeyword(kw string) bool {
	return c.cur.Kind == TokenKeyword && c.cur.Text == kw
}

func (c *Compiler) isSymbol(sym string) bool {
	return c.cur.Kind == TokenSymbol && c.cur.Text == sym
}

func (c *Compiler) emit(format string, args ...interface{}) {
	c.w.WriteLine(fmt.Sprintf(format, args...))
}

func (c *Compiler) newLabel(prefix string) string {
	l := fmt.Sprintf("%s%d", prefix, c.labelSeq)
	c.labelSeq++
	return l
}

// compileClass: 'class' className '{' classVarDec* subroutineDec* '}'
func (c *Compiler) compileClass() error {
	if err := c.expectKeyword("class"); err != nil {
		return err
	}
	name, err := c.expectIdentifier()
	if err != nil {
		return err
	}
	c.className = name
	c.classTable = NewSymbolTable()

	if err := c.expectSymbol("{"); err != nil {
		return err
	}
	for c.isKeyword("static") || c.isKeyword("field") {
		if err := c.compileClassVarDec(); err != nil {
			return err
		}
	}
	for c.isKeyword("constructor") || c.isKeyword("function") || c.isKeyword("method") {
		if err := c.compileSubroutine(); err != nil {
			return err
		}
	}
	return c.expectSymbol("}")
}

// compileClassVarDec: ('static'|'field') type varName (',' varName)* ';'
func (c *Compiler) compileClassVarDec() error {
	kind := KindStatic
	if c.cur.Text == "field" {
		kind = KindField
	}
	if err := c.advance(); err != nil {
		return err
	}
	typ, err := c.compileType()
	if err != nil {
		return err
	}
	for {
		name, err := c.expectIdentifier()
		if err != nil {
			return err
		}
		c.classTable.Define(name, typ, kind)
		if c.isSymbol(",") {
			if err := c.advance(); err != nil {
				return err
			}
			continue
		}
		break
	}
	return c.expectSymbol(";")
}

// compileType: 'int' | 'char' | 'boolean' | className
func (c *Compiler) compileType() (string, error) {
	if primitiveTypes[c.cur.Text] && c.cur.Kind == TokenKeyword {
		t := c.cur.Text
		return t, c.advance()
	}
	return c.expectIdentifier()
}

// compileSubroutine: ('constructor'|'function'|'method') ('void'|type)
// subroutineName '(' parameterList ')' subroutineBody
func (c *Compiler) compileSubroutine() error {
	c.subKind = c.cur.Text
	if err := c.advance(); err != nil {
		return err
	}
	if c.cur.Text == "void" && c.cur.Kind == TokenKeyword {
		if err := c.advance(); err != nil {
			return err
		}
	} else if _, err := c.compileType(); err != nil {
		return err
	}
	name, err := c.expectIdentifier()
	if err != nil {
		return err
	}
	c.subName = name
	c.subTable = NewSymbolTable()
	c.labelSeq = 0

	if c.subKind == "method" {
		c.subTable.Define("this", c.className, KindArg)
	}

	if err := c.expectSymbol("("); err != nil {
		return err
	}
	if err := c.compileParameterList(); err != nil {
		return err
	}
	if err := c.expectSymbol(")"); err != nil {
		return err
	}
	return c.compileSubroutineBody()
}

// compileParameterList: ((type varName) (',' type varName)*)?
func (c *Compiler) compileParameterList() error {
	if c.isSymbol(")") {
		return nil
	}
	for {
		typ, err := c.compileType()
		if err != nil {
			return err
		}
		name, err := c.expectIdentifier()
		if err != nil {
			return err
		}
		c.subTable.Define(name, typ, KindArg)
		if c.isSymbol(",") {
			if err := c.advance(); err != nil {
				return err
			}
			continue
		}
		break
	}
	return nil
}

// compileSubroutineBody: '{' varDec* statements '}'. Emits the
// function/constructor/method prologue once nLocals is known.
func (c *Compiler) compileSubroutineBody() error {
	if err := c.expectSymbol("{"); err != nil {
		return err
	}
	for c.isKeyword("var") {
		if err := c.compileVarDec(); err != nil {
			return err
		}
	}

	nLocals := c.subTable.VarCount(KindVar)
	c.emit("function %s.%s %d", c.className, c.subName, nLocals)

	switch c.subKind {
	case "constructor":
		nFields := c.classTable.VarCount(KindField)
		c.emit("push constant %d", nFields)
		c.emit("call Memory.alloc 1")
		c.emit("pop pointer 0")
	case "method":
		c.emit("push argument 0")
		c.emit("pop pointer 0")
	}

	if err := c.compileStatements(); err != nil {
		return err
	}
	return c.expectSymbol("}")
}

// compileVarDec: 'var' type varName (',' varName)* ';'
func (c *Compiler) compileVarDec() error {
	if err := c.advance(); err != nil { // 'var'
		return err
	}
	typ, err := c.compileType()
	if err != nil {
		return err
	}
	for {
		name, err := c.expectIdentifier()
		if err != nil {
			return err
		}
		c.subTable.Define(name, typ, KindVar)
		if c.isSymbol(",") {
			if err := c.advance(); err != nil {
				return err
			}
			continue
		}
		break
	}
	return c.expectSymbol(";")
}

// compileStatements: statement*
func (c *Compiler) compileStatements() error {
	for {
		switch {
		case c.isKeyword("let"):
			if err := c.compileLet(); err != nil {
				return err
			}
		case c.isKeyword("if"):
			if err := c.compileIf(); err != nil {
				return err
			}
		case c.isKeyword("while"):
			if err := c.compileWhile(); err != nil {
				return err
			}
		case c.isKeyword("do"):
			if err := c.compileDo(); err != nil {
				return err
			}
		case c.isKeyword("return"):
			if err := c.compileReturn(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// resolve looks a name up in the subroutine table, falling back to the
// class table.
func (c *Compiler) resolve(name string) (Symbol, bool) {
	if sym, ok := c.subTable.Lookup(name); ok {
		return sym, true
	}
	return c.classTable.Lookup(name)
}

// compileLet: 'let' varName ('[' expression ']')? '=' expression ';'
func (c *Compiler) compileLet() error {
	if err := c.advance(); err != nil { // 'let'
		return err
	}
	name, err := c.expectIdentifier()
	if err != nil {
		return err
	}
	sym, ok := c.resolve(name)
	if !ok {
		return c.errorf("undeclared identifier %q", name)
	}

	indexed := false
	if c.isSymbol("[") {
		indexed = true
		if err := c.advance(); err != nil {
			return err
		}
		c.emit("push %s %d", segmentOf(sym.Kind), sym.Index)
		if err := c.compileExpression(); err != nil {
			return err
		}
		c.emit("add")
		if err := c.expectSymbol("]"); err != nil {
			return err
		}
		c.emit("pop temp 0")
	}

	if err := c.expectSymbol("="); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.expectSymbol(";"); err != nil {
		return err
	}

	if indexed {
		c.emit("push temp 0")
		c.emit("pop pointer 1")
		c.emit("pop that 0")
	} else {
		c.emit("pop %s %d", segmentOf(sym.Kind), sym.Index)
	}
	return nil
}

// compileIf: 'if' '(' expression ')' '{' statements '}' ('else' '{' statements '}')?
func (c *Compiler) compileIf() error {
	if err := c.advance(); err != nil {
		return err
	}
	if err := c.expectSymbol("("); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.expectSymbol(")"); err != nil {
		return err
	}

	elseLabel := c.newLabel("IF_FALSE")
	endLabel := c.newLabel("IF_END")

	c.emit("not")
	c.emit("if-goto %s", elseLabel)

	if err := c.expectSymbol("{"); err != nil {
		return err
	}
	if err := c.compileStatements(); err != nil {
		return err
	}
	if err := c.expectSymbol("}"); err != nil {
		return err
	}

	hasElse := c.isKeyword("else")
	if hasElse {
		c.emit("goto %s", endLabel)
	}
	c.emit("label %s", elseLabel)

	if hasElse {
		if err := c.advance(); err != nil {
			return err
		}
		if err := c.expectSymbol("{"); err != nil {
			return err
		}
		if err := c.compileStatements(); err != nil {
			return err
		}
		if err := c.expectSymbol("}"); err != nil {
			return err
		}
		c.emit("label %s", endLabel)
	}
	return nil
}

// compileWhile: 'while' '(' expression ')' '{' statements '}'
func (c *Compiler) compileWhile() error {
	if err := c.advance(); err != nil {
		return err
	}
	topLabel := c.newLabel("WHILE_EXP")
	endLabel := c.newLabel("WHILE_END")

	c.emit("label %s", topLabel)
	if err := c.expectSymbol("("); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.expectSymbol(")"); err != nil {
		return err
	}
	c.emit("not")
	c.emit("if-goto %s", endLabel)

	if err := c.expectSymbol("{"); err != nil {
		return err
	}
	if err := c.compileStatements(); err != nil {
		return err
	}
	if err := c.expectSymbol("}"); err != nil {
		return err
	}
	c.emit("goto %s", topLabel)
	c.emit("label %s", endLabel)
	return nil
}

// compileDo: 'do' subroutineCall ';'
func (c *Compiler) compileDo() error {
	if err := c.advance(); err != nil {
		return err
	}
	if err := c.compileSubroutineCall(); err != nil {
		return err
	}
	c.emit("pop temp 0")
	return c.expectSymbol(";")
}

// compileReturn: 'return' expression? ';'. Every Jack subroutine returns a
// value at the VM level; a void return pushes a dummy constant 0.
func (c *Compiler) compileReturn() error {
	if err := c.advance(); err != nil {
		return err
	}
	if c.isSymbol(";") {
		c.emit("push constant 0")
	} else if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.expectSymbol(";"); err != nil {
		return err
	}
	c.emit("return")
	return nil
}

// compileExpression: term (op term)*. Jack has no operator precedence:
// operators are folded strictly left to right.
func (c *Compiler) compileExpression() error {
	if err := c.compileTerm(); err != nil {
		return err
	}
	for c.cur.Kind == TokenSymbol {
		op, isOp := binaryOp[c.cur.Text]
		isStar := c.cur.Text == "*"
		isSlash := c.cur.Text == "/"
		if !isOp && !isStar && !isSlash {
			break
		}
		if err := c.advance(); err != nil {
			return err
		}
		if err := c.compileTerm(); err != nil {
			return err
		}
		switch {
		case isStar:
			c.emit("call Math.multiply 2")
		case isSlash:
			c.emit("call Math.divide 2")
		default:
			c.emit(op)
		}
	}
	return nil
}

// compileTerm handles every term production, disambiguating
// varName / varName[expr] / subroutineCall by one token of lookahead beyond
// the identifier (handled inline since the lexer already gives us cur+1 via
// re-lexing is unavailable - Jack's grammar makes a single token of
// lookahead on the symbol following an identifier sufficient).
func (c *Compiler) compileTerm() error {
	switch {
	case c.cur.Kind == TokenIntConst:
		c.emit("push constant %d", c.cur.IntVal)
		return c.advance()

	case c.cur.Kind == TokenStringConst:
		return c.compileStringConst()

	case c.isKeyword("true"):
		c.emit("push constant 0")
		c.emit("not")
		return c.advance()

	case c.isKeyword("false") || c.isKeyword("null"):
		c.emit("push constant 0")
		return c.advance()

	case c.isKeyword("this"):
		c.emit("push pointer 0")
		return c.advance()

	case c.isSymbol("("):
		if err := c.advance(); err != nil {
			return err
		}
		if err := c.compileExpression(); err != nil {
			return err
		}
		return c.expectSymbol(")")

	case c.isSymbol("-"):
		if err := c.advance(); err != nil {
			return err
		}
		if err := c.compileTerm(); err != nil {
			return err
		}
		c.emit("neg")
		return nil

	case c.isSymbol("~"):
		if err := c.advance(); err != nil {
			return err
		}
		if err := c.compileTerm(); err != nil {
			return err
		}
		c.emit("not")
		return nil

	case c.cur.Kind == TokenIdentifier:
		return c.compileIdentifierTerm()

	default:
		return c.errorf("unexpected token in expression: %s %q", c.cur.Kind, c.cur.Text)
	}
}

// compileStringConst pushes String.new followed by one appendChar call per
// character of the literal.
func (c *Compiler) compileStringConst() error {
	s := c.cur.Text
	c.emit("push constant %d", len(s))
	c.emit("call String.new 1")
	for _, r := range s {
		c.emit("push constant %d", r)
		c.emit("call String.appendChar 2")
	}
	return c.advance()
}

// compileIdentifierTerm resolves the three shapes an identifier can start:
// varName, varName[expr] and subroutineCall (bare, var.method or
// Class.function).
func (c *Compiler) compileIdentifierTerm() error {
	name := c.cur.Text
	if err := c.advance(); err != nil {
		return err
	}

	switch {
	case c.isSymbol("["):
		sym, ok := c.resolve(name)
		if !ok {
			return c.errorf("undeclared identifier %q", name)
		}
		if err := c.advance(); err != nil {
			return err
		}
		c.emit("push %s %d", segmentOf(sym.Kind), sym.Index)
		if err := c.compileExpression(); err != nil {
			return err
		}
		if err := c.expectSymbol("]"); err != nil {
			return err
		}
		c.emit("add")
		c.emit("pop pointer 1")
		c.emit("push that 0")
		return nil

	case c.isSymbol("(") || c.isSymbol("."):
		return c.compileSubroutineCallNamed(name)

	default:
		sym, ok := c.resolve(name)
		if !ok {
			return c.errorf("undeclared identifier %q", name)
		}
		c.emit("push %s %d", segmentOf(sym.Kind), sym.Index)
		return nil
	}
}

// compileSubroutineCall parses a call that starts a "do" statement, where
// the leading identifier hasn't been consumed yet.
func (c *Compiler) compileSubroutineCall() error {
	name, err := c.expectIdentifier()
	if err != nil {
		return err
	}
	return c.compileSubroutineCallNamed(name)
}

// compileSubroutineCallNamed emits one of the three call forms (§4.2):
//
//   - bare name(...): implicit method call on the current object, passing
//     "this" as the hidden first argument.
//   - var.name(...): var resolves to a local/field/static/argument - a
//     method call on that object, passing its value as the hidden first
//     argument.
//   - Class.name(...): Class doesn't resolve to a variable - a plain
//     function call with no hidden argument.
func (c *Compiler) compileSubroutineCallNamed(name string) error {
	var callee string
	nArgs := 0

	if c.isSymbol(".") {
		if err := c.advance(); err != nil {
			return err
		}
		member, err := c.expectIdentifier()
		if err != nil {
			return err
		}
		if sym, ok := c.resolve(name); ok {
			c.emit("push %s %d", segmentOf(sym.Kind), sym.Index)
			nArgs++
			callee = sym.Type + "." + member
		} else {
			callee = name + "." + member
		}
	} else {
		c.emit("push pointer 0")
		nArgs++
		callee = c.className + "." + name
	}

	if err := c.expectSymbol("("); err != nil {
		return err
	}
	n, err := c.compileExpressionList()
	if err != nil {
		return err
	}
	nArgs += n
	if err := c.expectSymbol(")"); err != nil {
		return err
	}
	c.emit("call %s %d", callee, nArgs)
	return nil
}

// compileExpressionList: (expression (',' expression)*)?. Returns the
// number of expressions compiled.
func (c *Compiler) compileExpressionList() (int, error) {
	if c.isSymbol(")") {
		return 0, nil
	}
	n := 0
	for {
		if err := c.compileExpression(); err != nil {
			return 0, err
		}
		n++
		if c.isSymbol(",") {
			if err := c.advance(); err != nil {
				return 0, err
			}
			continue
		}
		break
	}
	return n, nil
}
