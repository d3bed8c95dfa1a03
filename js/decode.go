package js

import (
	"encoding/json"
	"errors"
	"fmt"
)

// schemaVersion is the serialized module document version this decoder
// understands.
const schemaVersion = 1

// these unexported DTOs must have exported fields and json name tags
// to ensure encoding/json will parse raw data into these structs
type rawModule struct {
	Version int         `json:"version"`
	Name    string      `json:"name"`
	Imports []string    `json:"imports"`
	Exports []rawExport `json:"exports"`
}

type rawExport struct {
	Name string  `json:"name"`
	Exp  *rawExp `json:"exp"`
}

// rawExp is the union of all per-kind payloads; Kind selects which fields
// are meaningful. Value stays raw so each kind can unmarshal it into its
// own Go type.
type rawExp struct {
	Kind    string          `json:"kind"`
	Name    string          `json:"name,omitempty"`
	Index   *int            `json:"index,omitempty"`
	Value   json.RawMessage `json:"value,omitempty"`
	Arity   int             `json:"arity,omitempty"`
	Body    *rawExp         `json:"body,omitempty"`
	Fields  []rawField      `json:"fields,omitempty"`
	Elems   []*rawExp       `json:"elems,omitempty"`
	Fn      *rawExp         `json:"fn,omitempty"`
	Args    []*rawExp       `json:"args,omitempty"`
	Target  *rawExp         `json:"target,omitempty"`
	Field   string          `json:"field,omitempty"`
	Cond    *rawExp         `json:"cond,omitempty"`
	Then    *rawExp         `json:"then,omitempty"`
	Else    *rawExp         `json:"else,omitempty"`
	Op      string          `json:"op,omitempty"`
	Operand *rawExp         `json:"operand,omitempty"`
	Left    *rawExp         `json:"left,omitempty"`
	Right   *rawExp         `json:"right,omitempty"`
	Code    string          `json:"code,omitempty"`
}

type rawField struct {
	Name string  `json:"name"`
	Exp  *rawExp `json:"exp"`
}

// ParseModule decodes a serialized module document produced by the
// compiler front end into a Module of expression trees.
func ParseModule(body []byte) (*Module, error) {

	// 1) parse raw json
	var raw rawModule
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	if raw.Version != schemaVersion {
		return nil, fmt.Errorf("unsupported module version: got %d, want %d", raw.Version, schemaVersion)
	}
	if raw.Name == "" {
		return nil, errors.New("module.name must not be empty")
	}

	// 2) decode every export body into an Exp tree
	m := &Module{
		Name:    raw.Name,
		Imports: raw.Imports,
		Exports: make([]Export, len(raw.Exports)),
	}

	for i, ex := range raw.Exports {
		if ex.Name == "" {
			return nil, fmt.Errorf("export[%d]: name is required", i)
		}
		body, err := decodeExp(ex.Exp)
		if err != nil {
			return nil, fmt.Errorf("export[%d] %q: %w", i, ex.Name, err)
		}
		m.Exports[i] = Export{Name: ex.Name, Body: body}
	}

	return m, nil
}

// decodeExp transforms one raw node (and, recursively, its children) into
// the corresponding Exp variant.
func decodeExp(raw *rawExp) (Exp, error) {
	if raw == nil {
		return nil, errors.New("missing expression node")
	}

	switch raw.Kind {
	case "self":
		return Self{}, nil

	case "local":
		if raw.Index == nil {
			return nil, errors.New("local: index is required")
		}
		if *raw.Index < 0 {
			return nil, fmt.Errorf("local: index must not be negative, got %d", *raw.Index)
		}
		return Local{Index: *raw.Index}, nil

	case "global":
		if raw.Name == "" {
			return nil, errors.New("global: name is required")
		}
		return Global{Name: raw.Name}, nil

	case "undefined":
		return Undefined{}, nil

	case "null":
		return Null{}, nil

	case "string":
		var v string
		if err := json.Unmarshal(raw.Value, &v); err != nil {
			return nil, fmt.Errorf("string: %w", err)
		}
		return String{Value: v}, nil

	case "char":
		var v string
		if err := json.Unmarshal(raw.Value, &v); err != nil {
			return nil, fmt.Errorf("char: %w", err)
		}
		runes := []rune(v)
		if len(runes) != 1 {
			return nil, fmt.Errorf("char: want exactly one character, got %d", len(runes))
		}
		return Char{Value: runes[0]}, nil

	case "integer":
		var v int64
		if err := json.Unmarshal(raw.Value, &v); err != nil {
			return nil, fmt.Errorf("integer: %w", err)
		}
		return Integer{Value: v}, nil

	case "double":
		var v float64
		if err := json.Unmarshal(raw.Value, &v); err != nil {
			return nil, fmt.Errorf("double: %w", err)
		}
		return Double{Value: v}, nil

	case "lambda":
		if raw.Arity < 0 {
			return nil, fmt.Errorf("lambda: arity must not be negative, got %d", raw.Arity)
		}
		body, err := decodeExp(raw.Body)
		if err != nil {
			return nil, fmt.Errorf("lambda body: %w", err)
		}
		return Lambda{Arity: raw.Arity, Body: body}, nil

	case "object":
		fields := make([]Field, len(raw.Fields))
		for i, f := range raw.Fields {
			if f.Name == "" {
				return nil, fmt.Errorf("object field[%d]: name is required", i)
			}
			body, err := decodeExp(f.Exp)
			if err != nil {
				return nil, fmt.Errorf("object field %q: %w", f.Name, err)
			}
			fields[i] = Field{Name: f.Name, Body: body}
		}
		return Object{Fields: fields}, nil

	case "array":
		elems, err := decodeList(raw.Elems, "array element")
		if err != nil {
			return nil, err
		}
		return Array{Elems: elems}, nil

	case "apply":
		fn, err := decodeExp(raw.Fn)
		if err != nil {
			return nil, fmt.Errorf("apply fn: %w", err)
		}
		args, err := decodeList(raw.Args, "apply argument")
		if err != nil {
			return nil, err
		}
		return Apply{Fn: fn, Args: args}, nil

	case "lookup":
		if raw.Field == "" {
			return nil, errors.New("lookup: field is required")
		}
		target, err := decodeExp(raw.Target)
		if err != nil {
			return nil, fmt.Errorf("lookup target: %w", err)
		}
		return Lookup{Target: target, Field: raw.Field}, nil

	case "if":
		cond, err := decodeExp(raw.Cond)
		if err != nil {
			return nil, fmt.Errorf("if cond: %w", err)
		}
		then, err := decodeExp(raw.Then)
		if err != nil {
			return nil, fmt.Errorf("if then: %w", err)
		}
		els, err := decodeExp(raw.Else)
		if err != nil {
			return nil, fmt.Errorf("if else: %w", err)
		}
		return If{Cond: cond, Then: then, Else: els}, nil

	case "binop":
		if raw.Op == "" {
			return nil, errors.New("binop: op is required")
		}
		left, err := decodeExp(raw.Left)
		if err != nil {
			return nil, fmt.Errorf("binop left: %w", err)
		}
		right, err := decodeExp(raw.Right)
		if err != nil {
			return nil, fmt.Errorf("binop right: %w", err)
		}
		return BinOp{Op: raw.Op, Left: left, Right: right}, nil

	case "preop":
		if raw.Op == "" {
			return nil, errors.New("preop: op is required")
		}
		operand, err := decodeExp(raw.Operand)
		if err != nil {
			return nil, fmt.Errorf("preop operand: %w", err)
		}
		return PreOp{Op: raw.Op, Operand: operand}, nil

	case "const":
		if raw.Code == "" {
			return nil, errors.New("const: code is required")
		}
		return Const{Code: raw.Code}, nil

	case "plainjs":
		if raw.Code == "" {
			return nil, errors.New("plainjs: code is required")
		}
		return PlainJS{Code: raw.Code}, nil

	case "":
		return nil, errors.New("expression kind is required")

	default:
		return nil, fmt.Errorf("unknown expression kind %q", raw.Kind)
	}
}

// decodeList decodes a slice of child nodes, labelling errors with the
// child's position.
func decodeList(raws []*rawExp, what string) ([]Exp, error) {
	out := make([]Exp, len(raws))
	for i, r := range raws {
		e, err := decodeExp(r)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", what, i, err)
		}
		out[i] = e
	}
	return out, nil
}
