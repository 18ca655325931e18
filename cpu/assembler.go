// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":        "0",
	"FONT_START":    fmt.Sprintf("%#x", FONT_START),
	"FONT_SIZE":     fmt.Sprintf("%d", FONT_SIZE),
	"PROGRAM_START": fmt.Sprintf("%#x", PROGRAM_START),
	"MEMORY_SIZE":   fmt.Sprintf("%#x", MEMORY_SIZE),
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reLabel      = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)
)

// Assembler is a two pass assembler for CHIP-8 programs: lines are assembled
// in order, then label references are linked.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of assembled lines.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// valueIn returns the value of a word, which must be in [low, high].
func (asm *Assembler) valueIn(word string, low, high int) (value int, err error) {
	value, err = asm.valueOf(word)
	if err != nil {
		return
	}

	if value < low || value > high {
		err = ErrValueRange
		return
	}

	return
}

// registerOf returns the index of a v0 through vf register name.
func registerOf(word string) (reg uint16, ok bool) {
	if len(word) != 2 || (word[0] != 'v' && word[0] != 'V') {
		return
	}

	index := strings.IndexByte("0123456789abcdef", strings.ToLower(word)[1])
	if index < 0 {
		return
	}

	reg = uint16(index)
	ok = true
	return
}

// isLabel reports whether a word can name a label.
func isLabel(word string) bool {
	if _, is_reg := registerOf(word); is_reg {
		return false
	}
	return reLabel.MatchString(word)
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var num int
		num, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(num)
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// splitWords splits on blanks and commas.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}

// parseLine parses a single line into words, handling equates and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Strip comments, now that ';' literals are numbers.
	line, _, _ = strings.Cut(line, ";")

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words = splitWords(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !isLabel(label) {
			err = ErrOperandInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
	}

	return
}

// currentAddr gets the address of the next assembled byte.
func (asm *Assembler) currentAddr() int {
	if len(asm.Lines) == 0 {
		return PROGRAM_START
	}

	last := asm.Lines[len(asm.Lines)-1]

	return last.Addr + len(last.Data)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Lines = asm.Lines[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(text)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.Lines {
		ln := &asm.Lines[n]

		if len(ln.LinkLabel) == 0 {
			continue
		}
		lineno = ln.LineNo
		line = strings.Join(ln.Words, " ")

		addr, ok := asm.Label[ln.LinkLabel]
		if !ok {
			err = ErrLabelMissing(ln.LinkLabel)
			return
		}
		if addr > 0xfff {
			err = ErrValueRange
			return
		}
		ln.Data[0] |= byte(addr>>8) & 0x0f
		ln.Data[1] |= byte(addr)
	}

	prog = &Program{
		Lines: make([]Line, len(asm.Lines)),
	}
	copy(prog.Lines, asm.Lines)

	return
}

// parseWords assembles the words of a line.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var data []byte
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	defer func() {
		if len(data) == 0 {
			return
		}
		line := Line{LineNo: lineno, Addr: asm.currentAddr(), Words: words, Data: data, LinkLabel: label}
		asm.Lines = append(asm.Lines, line)
	}()

	switch strings.ToLower(words[0]) {
	case ".byte":
		if len(words) < 2 {
			err = ErrOperandInvalid
			return
		}
		for _, word := range words[1:] {
			var value int
			value, err = asm.valueIn(word, -0x80, 0xff)
			if err != nil {
				data = nil
				return
			}
			data = append(data, byte(value))
		}
	case ".word":
		if len(words) < 2 {
			err = ErrOperandInvalid
			return
		}
		for _, word := range words[1:] {
			var value int
			value, err = asm.valueIn(word, -0x8000, 0xffff)
			if err != nil {
				data = nil
				return
			}
			data = append(data, byte(value>>8), byte(value))
		}
	default:
		var code uint16
		code, label, err = asm.parseInstruction(words)
		if err != nil {
			return
		}
		data = []byte{byte(code >> 8), byte(code)}
	}

	return
}

// errRank orders operand errors from least to most specific.
func errRank(err error) int {
	var parse ErrParseNumber
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrValueRange):
		return 4
	case errors.As(err, &parse):
		return 3
	case errors.Is(err, ErrRegisterInvalid):
		return 2
	default:
		return 1
	}
}

// parseInstruction assembles an instruction, trying each pattern that has
// the same name. The most specific operand error is reported if none fit.
func (asm *Assembler) parseInstruction(words []string) (code uint16, label string, err error) {
	name := strings.ToLower(words[0])
	args := words[1:]

	var known bool
	for _, pat := range Patterns {
		pat_name, operands := pat.Mnemonic.Syntax()
		if pat_name != name {
			continue
		}
		known = true

		var pat_err error
		if len(operands) != len(args) {
			pat_err = ErrOperandInvalid
		} else {
			code, label, pat_err = asm.encode(pat, operands, args)
			if pat_err == nil {
				err = nil
				return
			}
		}

		if errRank(pat_err) > errRank(err) {
			err = pat_err
		}
	}

	if !known {
		err = ErrInstructionInvalid
		return
	}

	code = 0
	label = ""
	return
}

// encode fills the operand fields of a pattern.
func (asm *Assembler) encode(pat Pattern, operands []string, args []string) (code uint16, label string, err error) {
	code = pat.Value

	for n, operand := range operands {
		arg := args[n]
		var value int
		switch operand {
		case "vx", "vy", "v0":
			reg, ok := registerOf(arg)
			if !ok || (operand == "v0" && reg != 0) {
				err = ErrRegisterInvalid
				return
			}
			switch operand {
			case "vx":
				code |= reg << 8
			case "vy":
				code |= reg << 4
			}
		case "kk":
			value, err = asm.valueIn(arg, -0x80, 0xff)
			if err != nil {
				return
			}
			code |= uint16(uint8(value))
		case "n":
			value, err = asm.valueIn(arg, 0, 0xf)
			if err != nil {
				return
			}
			code |= uint16(value)
		case "nnn":
			value, err = asm.valueIn(arg, 0, 0xfff)
			if err != nil {
				var parse ErrParseNumber
				if !errors.As(err, &parse) || !isLabel(arg) {
					return
				}
				err = nil
				label = arg
				value = 0
			}
			code |= uint16(value)
		default:
			if !strings.EqualFold(arg, operand) {
				err = ErrOperandInvalid
				return
			}
		}
	}

	return
}
